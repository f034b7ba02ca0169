package reports

import (
	"context"
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
)

// ManageReportScheduleService creates, updates or deletes a report
// schedule.
type ManageReportScheduleService struct {
	client       *mws.Client
	reportType   ReportType
	schedule     Schedule
	scheduleDate *time.Time
	raw          bool
}

func NewManageReportScheduleService(client *mws.Client) *ManageReportScheduleService {
	return &ManageReportScheduleService{client: client}
}

func (s *ManageReportScheduleService) ReportType(t ReportType) *ManageReportScheduleService {
	s.reportType = t
	return s
}

func (s *ManageReportScheduleService) Schedule(sc Schedule) *ManageReportScheduleService {
	s.schedule = sc
	return s
}

// ScheduleDate sets when the next report is generated.
func (s *ManageReportScheduleService) ScheduleDate(t time.Time) *ManageReportScheduleService {
	s.scheduleDate = &t
	return s
}

func (s *ManageReportScheduleService) RawOutput(raw bool) *ManageReportScheduleService {
	s.raw = raw
	return s
}

func (s *ManageReportScheduleService) Validate() error {
	return svc.ValidationError(subsys, "ManageReportScheduleService.Validate", s.validate())
}

func (s *ManageReportScheduleService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionReports, "ManageReportSchedule")
	req.Params.Set("ReportType", string(s.reportType)).Set("Schedule", string(s.schedule))
	if s.scheduleDate != nil {
		req.Params.SetTime("ScheduleDate", *s.scheduleDate)
	}
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "ManageReportScheduleService.Do", s.validate(), req)
}

func (s *ManageReportScheduleService) validate() []string {
	var errs []string
	if s.reportType == "" {
		errs = append(errs, "reportType is required")
	} else {
		errs = svc.CheckEnum(errs, "reportType", ReportTypes, s.reportType)
	}
	if s.schedule == "" {
		errs = append(errs, "schedule is required")
	} else {
		errs = svc.CheckEnum(errs, "schedule", Schedules, s.schedule)
	}
	return errs
}

// GetReportScheduleListService lists the seller's report schedules.
type GetReportScheduleListService struct {
	client *mws.Client
	filter filter
	raw    bool
}

func NewGetReportScheduleListService(client *mws.Client) *GetReportScheduleListService {
	return &GetReportScheduleListService{client: client}
}

func (s *GetReportScheduleListService) ReportTypes(types ...ReportType) *GetReportScheduleListService {
	s.filter.types = types
	return s
}

func (s *GetReportScheduleListService) RawOutput(raw bool) *GetReportScheduleListService {
	s.raw = raw
	return s
}

func (s *GetReportScheduleListService) Validate() error {
	return svc.ValidationError(subsys, "GetReportScheduleListService.Validate", s.filter.validate(nil, "", ""))
}

func (s *GetReportScheduleListService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionReports, "GetReportScheduleList")
	s.filter.params(req.Params, "", "")
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetReportScheduleListService.Do", s.filter.validate(nil, "", ""), req)
}

// GetReportScheduleListByNextTokenService fetches the next page of
// GetReportScheduleList.
type GetReportScheduleListByNextTokenService struct {
	client    *mws.Client
	nextToken string
	raw       bool
}

func NewGetReportScheduleListByNextTokenService(client *mws.Client) *GetReportScheduleListByNextTokenService {
	return &GetReportScheduleListByNextTokenService{client: client}
}

func (s *GetReportScheduleListByNextTokenService) NextToken(token string) *GetReportScheduleListByNextTokenService {
	s.nextToken = token
	return s
}

func (s *GetReportScheduleListByNextTokenService) RawOutput(raw bool) *GetReportScheduleListByNextTokenService {
	s.raw = raw
	return s
}

func (s *GetReportScheduleListByNextTokenService) Validate() error {
	return svc.ValidationError(subsys, "GetReportScheduleListByNextTokenService.Validate", requireToken(s.nextToken))
}

func (s *GetReportScheduleListByNextTokenService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionReports, "GetReportScheduleListByNextToken")
	req.Params.Set("NextToken", s.nextToken)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetReportScheduleListByNextTokenService.Do", requireToken(s.nextToken), req)
}

// GetReportScheduleCountService counts the seller's report schedules.
type GetReportScheduleCountService struct {
	client *mws.Client
	filter filter
	raw    bool
}

func NewGetReportScheduleCountService(client *mws.Client) *GetReportScheduleCountService {
	return &GetReportScheduleCountService{client: client}
}

func (s *GetReportScheduleCountService) ReportTypes(types ...ReportType) *GetReportScheduleCountService {
	s.filter.types = types
	return s
}

func (s *GetReportScheduleCountService) RawOutput(raw bool) *GetReportScheduleCountService {
	s.raw = raw
	return s
}

func (s *GetReportScheduleCountService) Validate() error {
	return svc.ValidationError(subsys, "GetReportScheduleCountService.Validate", s.filter.validate(nil, "", ""))
}

func (s *GetReportScheduleCountService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionReports, "GetReportScheduleCount")
	s.filter.params(req.Params, "", "")
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetReportScheduleCountService.Do", s.filter.validate(nil, "", ""), req)
}
