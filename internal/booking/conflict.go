package booking

import (
	"context"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/schedule"
)

// Checker finds existing bookings that collide with a candidate assignment.
// Unassigned bookings never conflict, and cancelled bookings never
// participate in detection.
type Checker struct {
	repo Repository
}

func NewChecker(repo Repository) *Checker {
	return &Checker{repo: repo}
}

// FindConflicts returns every non-cancelled booking for the nanny whose
// calendar dates intersect the candidate's and whose time-of-day ranges
// overlap. The full list comes back so the operator can see each collision.
func (c *Checker) FindConflicts(ctx context.Context, nannyID *int64, date string, endDate *string, startTime string, endTime *string, excludeID int64) ([]Conflict, error) {
	if nannyID == nil {
		return nil, nil
	}

	existing, err := c.repo.ListActiveForNanny(ctx, *nannyID, excludeID)
	if err != nil {
		return nil, err
	}

	return filterConflicts(date, endDate, startTime, endTime, existing), nil
}

// filterConflicts is the pure half of the checker, reused by the
// in-transaction re-validation after the rows are locked.
func filterConflicts(date string, endDate *string, startTime string, endTime *string, existing []Booking) []Conflict {
	end := date
	if endDate != nil && *endDate != "" {
		end = *endDate
	}
	candidateDates := schedule.ExpandDateRange(date, end)

	startMin := schedule.NormalizeStart(startTime)
	endMin := schedule.EndOfDayMinutes
	if endTime != nil {
		endMin = schedule.NormalizeEnd(*endTime)
	}

	var conflicts []Conflict
	for i := range existing {
		other := &existing[i]
		if other.Status == StatusCancelled {
			continue
		}
		if !schedule.DatesIntersect(candidateDates, other.Dates()) {
			continue
		}
		if !schedule.TimesOverlap(startMin, endMin, other.StartMinutes(), other.EndMinutes()) {
			continue
		}

		conflict := Conflict{
			BookingID:  other.ID,
			Date:       other.Date,
			StartTime:  other.StartTime,
			ClientName: other.ClientName,
		}
		if other.EndDate != nil {
			conflict.EndDate = *other.EndDate
		}
		if other.EndTime != nil {
			conflict.EndTime = *other.EndTime
		}
		conflicts = append(conflicts, conflict)
	}

	return conflicts
}
