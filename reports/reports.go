// Package reports wraps the Reports API section (2009-01-01): requesting
// reports, scheduling them, listing and downloading the results.
package reports

import (
	"context"
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
)

const subsys = "reports"

// GetReportService downloads one report. Report bodies are flat files or
// XML documents, so the result is raw and ParseFlatFile reads it.
type GetReportService struct {
	client   *mws.Client
	reportID string
}

func NewGetReportService(client *mws.Client) *GetReportService {
	return &GetReportService{client: client}
}

func (s *GetReportService) ReportID(id string) *GetReportService {
	s.reportID = id
	return s
}

func (s *GetReportService) Validate() error {
	return svc.ValidationError(subsys, "GetReportService.Validate", s.validate())
}

func (s *GetReportService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionReports, "GetReport")
	req.Params.Set("ReportId", s.reportID)
	req.RawOutput = true
	return svc.Do(ctx, s.client, subsys, "GetReportService.Do", s.validate(), req)
}

func (s *GetReportService) validate() []string {
	if s.reportID == "" {
		return []string{"reportId is required"}
	}
	return nil
}

// GetReportCountService counts reports available for download.
type GetReportCountService struct {
	client *mws.Client
	filter filter
	raw    bool
}

func NewGetReportCountService(client *mws.Client) *GetReportCountService {
	return &GetReportCountService{client: client}
}

func (s *GetReportCountService) ReportTypes(types ...ReportType) *GetReportCountService {
	s.filter.types = types
	return s
}

func (s *GetReportCountService) Acknowledged(v bool) *GetReportCountService {
	s.filter.acknowledged = &v
	return s
}

func (s *GetReportCountService) AvailableFromDate(t time.Time) *GetReportCountService {
	s.filter.from = &t
	return s
}

func (s *GetReportCountService) AvailableToDate(t time.Time) *GetReportCountService {
	s.filter.to = &t
	return s
}

func (s *GetReportCountService) RawOutput(raw bool) *GetReportCountService {
	s.raw = raw
	return s
}

func (s *GetReportCountService) Validate() error {
	return svc.ValidationError(subsys, "GetReportCountService.Validate", s.filter.validate(nil, availableFrom, availableTo))
}

func (s *GetReportCountService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionReports, "GetReportCount")
	s.filter.params(req.Params, availableFrom, availableTo)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetReportCountService.Do", s.filter.validate(nil, availableFrom, availableTo), req)
}

// GetReportListService lists reports created in the last 90 days.
type GetReportListService struct {
	client *mws.Client
	filter filter
	raw    bool
}

func NewGetReportListService(client *mws.Client) *GetReportListService {
	return &GetReportListService{client: client}
}

func (s *GetReportListService) MaxCount(n int) *GetReportListService {
	s.filter.maxCount = &n
	return s
}

func (s *GetReportListService) ReportTypes(types ...ReportType) *GetReportListService {
	s.filter.types = types
	return s
}

func (s *GetReportListService) Acknowledged(v bool) *GetReportListService {
	s.filter.acknowledged = &v
	return s
}

func (s *GetReportListService) AvailableFromDate(t time.Time) *GetReportListService {
	s.filter.from = &t
	return s
}

func (s *GetReportListService) AvailableToDate(t time.Time) *GetReportListService {
	s.filter.to = &t
	return s
}

func (s *GetReportListService) ReportRequestIDs(ids ...string) *GetReportListService {
	s.filter.requestIDs = ids
	return s
}

func (s *GetReportListService) RawOutput(raw bool) *GetReportListService {
	s.raw = raw
	return s
}

func (s *GetReportListService) Validate() error {
	return svc.ValidationError(subsys, "GetReportListService.Validate", s.filter.validate(nil, availableFrom, availableTo))
}

func (s *GetReportListService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionReports, "GetReportList")
	s.filter.params(req.Params, availableFrom, availableTo)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetReportListService.Do", s.filter.validate(nil, availableFrom, availableTo), req)
}

// GetReportListByNextTokenService fetches the next page of GetReportList.
type GetReportListByNextTokenService struct {
	client    *mws.Client
	nextToken string
	raw       bool
}

func NewGetReportListByNextTokenService(client *mws.Client) *GetReportListByNextTokenService {
	return &GetReportListByNextTokenService{client: client}
}

func (s *GetReportListByNextTokenService) NextToken(token string) *GetReportListByNextTokenService {
	s.nextToken = token
	return s
}

func (s *GetReportListByNextTokenService) RawOutput(raw bool) *GetReportListByNextTokenService {
	s.raw = raw
	return s
}

func (s *GetReportListByNextTokenService) Validate() error {
	return svc.ValidationError(subsys, "GetReportListByNextTokenService.Validate", requireToken(s.nextToken))
}

func (s *GetReportListByNextTokenService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionReports, "GetReportListByNextToken")
	req.Params.Set("NextToken", s.nextToken)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetReportListByNextTokenService.Do", requireToken(s.nextToken), req)
}

// UpdateReportAcknowledgementsService marks reports as acknowledged or not.
type UpdateReportAcknowledgementsService struct {
	client       *mws.Client
	reportIDs    []string
	acknowledged *bool
	raw          bool
}

func NewUpdateReportAcknowledgementsService(client *mws.Client) *UpdateReportAcknowledgementsService {
	return &UpdateReportAcknowledgementsService{client: client}
}

func (s *UpdateReportAcknowledgementsService) ReportIDs(ids ...string) *UpdateReportAcknowledgementsService {
	s.reportIDs = ids
	return s
}

func (s *UpdateReportAcknowledgementsService) Acknowledged(v bool) *UpdateReportAcknowledgementsService {
	s.acknowledged = &v
	return s
}

func (s *UpdateReportAcknowledgementsService) RawOutput(raw bool) *UpdateReportAcknowledgementsService {
	s.raw = raw
	return s
}

func (s *UpdateReportAcknowledgementsService) Validate() error {
	return svc.ValidationError(subsys, "UpdateReportAcknowledgementsService.Validate", s.validate())
}

func (s *UpdateReportAcknowledgementsService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionReports, "UpdateReportAcknowledgements")
	req.Params.SetList("ReportIdList.Id", s.reportIDs...)
	if s.acknowledged != nil {
		req.Params.SetBool("Acknowledged", *s.acknowledged)
	}
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "UpdateReportAcknowledgementsService.Do", s.validate(), req)
}

func (s *UpdateReportAcknowledgementsService) validate() []string {
	return svc.CheckCount(nil, "reportIds", len(s.reportIDs), 1, maxReportIDs)
}

func requireToken(token string) []string {
	if token == "" {
		return []string{"nextToken is required"}
	}
	return nil
}
