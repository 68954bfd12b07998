package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/logger"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/metrics"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/nanny"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/schedule"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	Get(ctx context.Context, id int64) (*Booking, error)
	GetByReviewToken(ctx context.Context, token string) (*Booking, error)
	List(ctx context.Context, status string) ([]Booking, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Booking, error)
}

type CreateRequest struct {
	NannyID       *int64          `json:"nanny_id"`
	Date          string          `json:"date" binding:"required"`
	EndDate       *string         `json:"end_date"`
	StartTime     string          `json:"start_time" binding:"required"`
	EndTime       *string         `json:"end_time"`
	ClientName    string          `json:"client_name" binding:"required"`
	ClientEmail   string          `json:"client_email"`
	ClientPhone   string          `json:"client_phone"`
	Hotel         string          `json:"hotel"`
	ChildrenCount int             `json:"children_count"`
	ChildrenAges  string          `json:"children_ages"`
	Notes         string          `json:"notes"`
	Locale        string          `json:"locale"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// UpdateRequest carries a partial booking edit. Nil fields are untouched;
// UnassignNanny clears the assignment, an empty EndDate/EndTime clears the
// column. ResendInvoice and SendReminder are explicit one-shot flags.
type UpdateRequest struct {
	NannyID       *int64 `json:"nanny_id"`
	UnassignNanny bool   `json:"unassign_nanny"`

	Date      *string `json:"date"`
	EndDate   *string `json:"end_date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`

	Status *string `json:"status"`

	ClientName    *string          `json:"client_name"`
	ClientEmail   *string          `json:"client_email"`
	ClientPhone   *string          `json:"client_phone"`
	Hotel         *string          `json:"hotel"`
	ChildrenCount *int             `json:"children_count"`
	ChildrenAges  *string          `json:"children_ages"`
	Notes         *string          `json:"notes"`
	Locale        *string          `json:"locale"`
	TotalPrice    *decimal.Decimal `json:"total_price"`

	ClockIn  *time.Time `json:"clock_in"`
	ClockOut *time.Time `json:"clock_out"`

	CancellationReason *string `json:"cancellation_reason"`
	CancelledBy        *string `json:"cancelled_by"`

	ResendInvoice bool `json:"resend_invoice"`
	SendReminder  bool `json:"send_reminder"`
}

type service struct {
	repo       Repository
	nannyRepo  nanny.Repository
	checker    *Checker
	dispatcher EffectDispatcher
	now        func() time.Time
}

func NewService(repo Repository, nannyRepo nanny.Repository, dispatcher EffectDispatcher) Service {
	return &service{
		repo:       repo,
		nannyRepo:  nannyRepo,
		checker:    NewChecker(repo),
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if _, err := time.Parse(schedule.DateLayout, req.Date); err != nil {
		return nil, newValidationError("date", "must be YYYY-MM-DD")
	}
	if req.EndDate != nil && *req.EndDate != "" {
		if _, err := time.Parse(schedule.DateLayout, *req.EndDate); err != nil {
			return nil, newValidationError("end_date", "must be YYYY-MM-DD")
		}
	}
	if _, ok := schedule.ParseTimeOfDay(req.StartTime); !ok {
		return nil, newValidationError("start_time", "must be H:MM or HhMM")
	}
	locale := req.Locale
	if locale == "" {
		locale = "en"
	}
	if locale != "en" && locale != "fr" {
		return nil, newValidationError("locale", "must be en or fr")
	}

	if req.NannyID != nil {
		if _, err := s.nannyRepo.GetByID(ctx, *req.NannyID); err != nil {
			if errors.Is(err, nanny.ErrNannyNotFound) {
				return nil, newValidationError("nanny_id", "unknown nanny")
			}
			return nil, err
		}

		conflicts, err := s.checker.FindConflicts(ctx, req.NannyID, req.Date, req.EndDate, req.StartTime, req.EndTime, 0)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			metrics.RecordConflict()
			return nil, &ConflictError{Conflicts: conflicts}
		}
	}

	b := &Booking{
		NannyID:       req.NannyID,
		Date:          req.Date,
		EndDate:       req.EndDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        StatusPending,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		Hotel:         req.Hotel,
		ChildrenCount: req.ChildrenCount,
		ChildrenAges:  req.ChildrenAges,
		Notes:         req.Notes,
		Locale:        locale,
		TotalPrice:    req.TotalPrice,
	}

	if req.NannyID == nil {
		return s.repo.Create(ctx, b)
	}

	// Re-validate under the nanny lock so a concurrent write that slipped
	// in after the pre-check surfaces as the same ConflictError.
	return s.repo.CreateGuarded(ctx, b, *req.NannyID, func(existing []Booking) error {
		if conflicts := filterConflicts(req.Date, req.EndDate, req.StartTime, req.EndTime, existing); len(conflicts) > 0 {
			metrics.RecordConflict()
			return &ConflictError{Conflicts: conflicts}
		}
		return nil
	})
}

func (s *service) Get(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByReviewToken(ctx context.Context, token string) (*Booking, error) {
	return s.repo.GetByReviewToken(ctx, token)
}

func (s *service) List(ctx context.Context, status string) ([]Booking, error) {
	return s.repo.List(ctx, status)
}

// Update applies a partial edit. The flow is: conflict check (only when
// scheduling fields change), transactional write with in-lock
// re-validation, then best-effort effect dispatch after commit.
func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Booking, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	patch := Patch{}
	schedulingChanged := false

	// Assignment.
	if req.UnassignNanny {
		if current.NannyID != nil {
			schedulingChanged = true
		}
		next.NannyID = nil
		patch["nanny_id"] = nil
	} else if req.NannyID != nil {
		if current.NannyID == nil || *current.NannyID != *req.NannyID {
			if _, err := s.nannyRepo.GetByID(ctx, *req.NannyID); err != nil {
				if errors.Is(err, nanny.ErrNannyNotFound) {
					return nil, newValidationError("nanny_id", "unknown nanny")
				}
				return nil, err
			}
			schedulingChanged = true
		}
		next.NannyID = req.NannyID
		patch["nanny_id"] = *req.NannyID
	}
	nannyAssigned := next.NannyID != nil &&
		(current.NannyID == nil || *current.NannyID != *next.NannyID)

	// Schedule.
	if req.Date != nil && *req.Date != current.Date {
		if _, err := time.Parse(schedule.DateLayout, *req.Date); err != nil {
			return nil, newValidationError("date", "must be YYYY-MM-DD")
		}
		next.Date = *req.Date
		patch["date"] = *req.Date
		schedulingChanged = true
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			if current.EndDate != nil {
				schedulingChanged = true
			}
			next.EndDate = nil
			patch["end_date"] = nil
		} else {
			if _, err := time.Parse(schedule.DateLayout, *req.EndDate); err != nil {
				return nil, newValidationError("end_date", "must be YYYY-MM-DD")
			}
			if current.EndDate == nil || *current.EndDate != *req.EndDate {
				schedulingChanged = true
			}
			next.EndDate = req.EndDate
			patch["end_date"] = *req.EndDate
		}
	}
	if req.StartTime != nil && *req.StartTime != current.StartTime {
		if _, ok := schedule.ParseTimeOfDay(*req.StartTime); !ok {
			return nil, newValidationError("start_time", "must be H:MM or HhMM")
		}
		next.StartTime = *req.StartTime
		patch["start_time"] = *req.StartTime
		schedulingChanged = true
	}
	if req.EndTime != nil {
		if *req.EndTime == "" {
			if current.EndTime != nil {
				schedulingChanged = true
			}
			next.EndTime = nil
			patch["end_time"] = nil
		} else {
			if current.EndTime == nil || *current.EndTime != *req.EndTime {
				schedulingChanged = true
			}
			next.EndTime = req.EndTime
			patch["end_time"] = *req.EndTime
		}
	}

	// Client details.
	applyString(&next.ClientName, req.ClientName, "client_name", patch)
	applyString(&next.ClientEmail, req.ClientEmail, "client_email", patch)
	applyString(&next.ClientPhone, req.ClientPhone, "client_phone", patch)
	applyString(&next.Hotel, req.Hotel, "hotel", patch)
	applyString(&next.ChildrenAges, req.ChildrenAges, "children_ages", patch)
	applyString(&next.Notes, req.Notes, "notes", patch)
	if req.ChildrenCount != nil {
		next.ChildrenCount = *req.ChildrenCount
		patch["children_count"] = *req.ChildrenCount
	}
	if req.Locale != nil {
		if *req.Locale != "en" && *req.Locale != "fr" {
			return nil, newValidationError("locale", "must be en or fr")
		}
		next.Locale = *req.Locale
		patch["locale"] = *req.Locale
	}
	if req.TotalPrice != nil {
		next.TotalPrice = *req.TotalPrice
		patch["total_price"] = *req.TotalPrice
	}
	if req.ClockIn != nil {
		next.ClockIn = req.ClockIn
		patch["clock_in"] = *req.ClockIn
	}
	if req.ClockOut != nil {
		next.ClockOut = req.ClockOut
		patch["clock_out"] = *req.ClockOut
	}

	// Status transition.
	statusChanged := false
	if req.Status != nil {
		nextStatus, err := ParseStatus(*req.Status)
		if err != nil {
			return nil, newValidationError("status", err.Error())
		}
		if nextStatus != current.Status {
			if !current.Status.CanTransitionTo(nextStatus) {
				return nil, &InvalidTransitionError{From: current.Status, To: nextStatus}
			}
			statusChanged = true
			next.Status = nextStatus
			patch["status"] = string(nextStatus)
		}
	}

	now := s.now()

	// Cancellation metadata is stamped exactly once; re-cancelling an
	// already-cancelled booking is a status no-op and never gets here.
	firstCancellation := false
	if statusChanged && next.Status == StatusCancelled && current.CancelledAt == nil {
		firstCancellation = true
		next.CancelledAt = &now
		patch["cancelled_at"] = now
		if req.CancellationReason != nil {
			next.CancellationReason = req.CancellationReason
			patch["cancellation_reason"] = *req.CancellationReason
		}
		if req.CancelledBy != nil {
			next.CancelledBy = req.CancelledBy
			patch["cancelled_by"] = *req.CancelledBy
		}
	}

	// Review token is issued at most once per booking.
	tokenIssued := false
	if statusChanged && next.Status == StatusCompleted && next.ClockOut != nil && current.ReviewToken == nil {
		token := uuid.NewString()
		next.ReviewToken = &token
		patch["review_token"] = token
		tokenIssued = true
	}

	if schedulingChanged && next.NannyID != nil {
		conflicts, err := s.checker.FindConflicts(ctx, next.NannyID, next.Date, next.EndDate, next.StartTime, next.EndTime, id)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			metrics.RecordConflict()
			return nil, &ConflictError{Conflicts: conflicts}
		}
	}

	if len(patch) == 0 {
		// Nothing persisted, nothing dispatched — but the explicit flags
		// still work on their own.
		if !req.ResendInvoice && !req.SendReminder {
			return current, nil
		}
	}

	var updated *Booking
	if len(patch) == 0 {
		updated = current
	} else if schedulingChanged && next.NannyID != nil {
		// Re-validate under lock so a concurrent writer that won the race
		// surfaces as the same ConflictError.
		updated, err = s.repo.UpdateGuarded(ctx, id, patch, *next.NannyID, func(existing []Booking) error {
			if conflicts := filterConflicts(next.Date, next.EndDate, next.StartTime, next.EndTime, existing); len(conflicts) > 0 {
				metrics.RecordConflict()
				return &ConflictError{Conflicts: conflicts}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		updated, err = s.repo.Update(ctx, id, patch)
		if err != nil {
			return nil, err
		}
	}

	if statusChanged {
		metrics.RecordTransition(current.Status.String(), next.Status.String())
	}

	var assigned *nanny.Nanny
	if updated.NannyID != nil {
		assigned, err = s.nannyRepo.GetByID(ctx, *updated.NannyID)
		if err != nil {
			// Effects degrade gracefully; the write already committed.
			logger.Errorf("failed to load nanny %d for notifications: %v", *updated.NannyID, err)
			assigned = nil
		}
	}

	effects := PlanEffects(Change{
		Booking:           updated,
		Nanny:             assigned,
		Previous:          current.Status,
		StatusChanged:     statusChanged,
		NannyAssigned:     nannyAssigned,
		FirstCancellation: firstCancellation,
		TokenIssued:       tokenIssued,
		ResendInvoice:     req.ResendInvoice,
		SendReminder:      req.SendReminder,
		Now:               now,
	})
	if len(effects) > 0 && s.dispatcher != nil {
		s.dispatcher.Dispatch(ctx, effects)
	}

	return updated, nil
}

func applyString(dst *string, src *string, col string, patch Patch) {
	if src == nil {
		return
	}
	*dst = *src
	patch[col] = *src
}
