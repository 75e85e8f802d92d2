package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"process-scheduler/config"
	"process-scheduler/internal/requests"
	"process-scheduler/internal/responses"
	"process-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	NonPreemptivePriority(ctx *fiber.Ctx) error
	PreemptivePriority(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// RegisterRoutes mounts the handler under /api/v1.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/npp", handler.NonPreemptivePriority)
		v1.Post("/pp", handler.PreemptivePriority)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/algorithms", handler.ListAlgorithms)
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) NonPreemptivePriority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.NonPreemptivePriority)
}

func (s *SchedulerHandlerImpl) PreemptivePriority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PreemptivePriority)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parse(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	all := make(map[string]responses.ScheduleResponse)
	for _, algorithm := range schedulers.Algorithms() {
		r := request
		r.Priorities = append([]int(nil), request.Priorities...)
		response, err := s.solve(algorithm, &r)
		if err != nil {
			return badRequest(ctx, err)
		}
		all[string(algorithm)] = response
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	list := make([]fiber.Map, 0, len(schedulers.Algorithms()))
	for _, algorithm := range schedulers.Algorithms() {
		list = append(list, fiber.Map{
			"value":                 string(algorithm),
			"label":                 algorithm.Name(),
			"requires_time_quantum": algorithm.RequiresTimeQuantum(),
			"uses_priorities":       algorithm.UsesPriorities(),
		})
	}
	return ctx.JSON(list)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := s.parse(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	response, err := s.solve(algorithm, &request)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		log.Println("invalid request format:", err)
		return request, errInvalidFormat
	}
	if request.TimeQuantum == 0 {
		request.TimeQuantum = s.config.RoundRobinTimeQuantum
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) solve(algorithm schedulers.Algorithm, request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	rules := requests.Rules{
		RequiresTimeQuantum: algorithm.RequiresTimeQuantum(),
		UsesPriorities:      algorithm.UsesPriorities(),
		MaxProcesses:        s.config.MaxProcesses,
	}
	if err := request.Validate(rules); err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Println("running", algorithm.Name(), "for", len(request.ArrivalTimes), "processes")
	result, err := schedulers.Solve(algorithm, request.ArrivalTimes, request.BurstTimes, request.TimeQuantum, request.Priorities,
		schedulers.WithFeedbackLevels(s.config.MultilevelFeedbackQueueLevelsTimeQuantum))
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return schedulers.GenerateResponse(algorithm, result), nil
}

var errInvalidFormat = errors.New("invalid request format")

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
