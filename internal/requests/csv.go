package requests

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadCSV reads one process per row as arrival,burst[,priority]. Blank lines
// and lines starting with # are skipped.
func LoadCSV(r io.Reader) (ScheduleRequest, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return ScheduleRequest{}, fmt.Errorf("%w: reading CSV: %v", ErrInvalidRequest, err)
	}

	var request ScheduleRequest
	withPriority := false
	for i, row := range rows {
		if len(row) < 2 || len(row) > 3 {
			return ScheduleRequest{}, fmt.Errorf("%w: line %d: want arrival,burst[,priority]", ErrInvalidRequest, i+1)
		}
		values := make([]int, len(row))
		for j, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return ScheduleRequest{}, fmt.Errorf("%w: line %d: please enter only integers", ErrInvalidRequest, i+1)
			}
			values[j] = v
		}
		request.ArrivalTimes = append(request.ArrivalTimes, values[0])
		request.BurstTimes = append(request.BurstTimes, values[1])
		priority := 0
		if len(values) == 3 {
			priority, withPriority = values[2], true
		}
		request.Priorities = append(request.Priorities, priority)
	}
	if !withPriority {
		request.Priorities = nil
	}
	return request, nil
}
