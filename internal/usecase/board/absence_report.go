package board

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/dto"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
)

type GetAbsenceReport struct {
	repo domain.Repository
}

func NewGetAbsenceReport(repo domain.Repository) *GetAbsenceReport {
	return &GetAbsenceReport{repo: repo}
}

func parseYearMonth(rawYear, rawMonth string) (int, time.Month, error) {
	if strings.TrimSpace(rawYear) == "" {
		return 0, 0, httperr.ErrRequired("year")
	}
	if strings.TrimSpace(rawMonth) == "" {
		return 0, 0, httperr.ErrRequired("month")
	}
	year, err := strconv.Atoi(strings.TrimSpace(rawYear))
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, httperr.ErrValidation("invalid_year", "year")
	}
	month, err := strconv.Atoi(strings.TrimSpace(rawMonth))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, httperr.ErrValidation("invalid_month", "month")
	}
	return year, time.Month(month), nil
}

// Execute builds the monthly grid: every active doctor against every day
// of the month, marked with the type of approved time-off covering it.
func (uc *GetAbsenceReport) Execute(ctx context.Context, rawYear, rawMonth string) (*dto.AbsenceReportDTO, error) {
	year, month, err := parseYearMonth(rawYear, rawMonth)
	if err != nil {
		return nil, err
	}

	period := calendar.Month(year, month)

	active := true
	doctors, err := uc.repo.ListDoctors(ctx, domain.DoctorFilter{Active: &active})
	if err != nil {
		return nil, err
	}

	requests, err := uc.repo.ListTimeOff(ctx, domain.TimeOffFilter{
		Status:      domain.StatusApproved,
		Overlapping: &period,
	})
	if err != nil {
		return nil, err
	}

	days := period.Days()
	out := &dto.AbsenceReportDTO{
		Year:    year,
		Month:   int(month),
		Days:    make([]dto.AbsenceDayDTO, 0, len(days)),
		Doctors: make([]dto.AbsenceRowDTO, 0, len(doctors)),
	}
	for _, d := range days {
		out.Days = append(out.Days, dto.AbsenceDayDTO{Date: d, Weekend: calendar.IsWeekend(d)})
	}

	for _, doc := range doctors {
		row := dto.AbsenceRowDTO{
			DoctorID:   doc.ID,
			DoctorName: doc.Name,
			Absences:   make(map[calendar.Date]string),
		}
		for _, req := range requests {
			if req.DoctorID != doc.ID {
				continue
			}
			span := req.Period()
			for _, d := range days {
				if !span.Contains(d) {
					continue
				}
				// first request listed wins a day
				if _, taken := row.Absences[d]; !taken {
					row.Absences[d] = req.Type
				}
			}
		}
		out.Doctors = append(out.Doctors, row)
	}

	return out, nil
}
