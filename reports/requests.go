package reports

import (
	"context"
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
)

// RequestReportService asks MWS to generate a report. The report type is
// not checked against ReportTypes so newer types can be requested.
type RequestReportService struct {
	client         *mws.Client
	reportType     ReportType
	startDate      *time.Time
	endDate        *time.Time
	reportOptions  string
	marketplaceIDs []string
	raw            bool
}

func NewRequestReportService(client *mws.Client) *RequestReportService {
	return &RequestReportService{client: client}
}

func (s *RequestReportService) ReportType(t ReportType) *RequestReportService {
	s.reportType = t
	return s
}

func (s *RequestReportService) StartDate(t time.Time) *RequestReportService {
	s.startDate = &t
	return s
}

func (s *RequestReportService) EndDate(t time.Time) *RequestReportService {
	s.endDate = &t
	return s
}

// ReportOptions passes report specific options, e.g. "ShowSalesChannel=true".
func (s *RequestReportService) ReportOptions(opts string) *RequestReportService {
	s.reportOptions = opts
	return s
}

func (s *RequestReportService) MarketplaceIDs(ids ...string) *RequestReportService {
	s.marketplaceIDs = ids
	return s
}

func (s *RequestReportService) RawOutput(raw bool) *RequestReportService {
	s.raw = raw
	return s
}

func (s *RequestReportService) Validate() error {
	return svc.ValidationError(subsys, "RequestReportService.Validate", s.validate())
}

func (s *RequestReportService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionReports, "RequestReport")
	req.Params.Set("ReportType", string(s.reportType))
	if s.startDate != nil {
		req.Params.SetTime("StartDate", *s.startDate)
	}
	if s.endDate != nil {
		req.Params.SetTime("EndDate", *s.endDate)
	}
	if s.reportOptions != "" {
		req.Params.Set("ReportOptions", s.reportOptions)
	}
	req.Params.SetList("MarketplaceIdList.Id", s.marketplaceIDs...)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "RequestReportService.Do", s.validate(), req)
}

func (s *RequestReportService) validate() []string {
	var errs []string
	if s.reportType == "" {
		errs = append(errs, "reportType is required")
	}
	if s.startDate != nil && s.endDate != nil && s.endDate.Before(*s.startDate) {
		errs = append(errs, "startDate must not be after endDate")
	}
	return errs
}

// GetReportRequestCountService counts report requests of the last 90 days.
type GetReportRequestCountService struct {
	client *mws.Client
	filter filter
	raw    bool
}

func NewGetReportRequestCountService(client *mws.Client) *GetReportRequestCountService {
	return &GetReportRequestCountService{client: client}
}

func (s *GetReportRequestCountService) ReportTypes(types ...ReportType) *GetReportRequestCountService {
	s.filter.types = types
	return s
}

func (s *GetReportRequestCountService) ProcessingStatuses(statuses ...ProcessingStatus) *GetReportRequestCountService {
	s.filter.statuses = statuses
	return s
}

func (s *GetReportRequestCountService) RequestedFromDate(t time.Time) *GetReportRequestCountService {
	s.filter.from = &t
	return s
}

func (s *GetReportRequestCountService) RequestedToDate(t time.Time) *GetReportRequestCountService {
	s.filter.to = &t
	return s
}

func (s *GetReportRequestCountService) RawOutput(raw bool) *GetReportRequestCountService {
	s.raw = raw
	return s
}

func (s *GetReportRequestCountService) Validate() error {
	return svc.ValidationError(subsys, "GetReportRequestCountService.Validate", s.filter.validate(nil, requestedFrom, requestedTo))
}

func (s *GetReportRequestCountService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionReports, "GetReportRequestCount")
	s.filter.params(req.Params, requestedFrom, requestedTo)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetReportRequestCountService.Do", s.filter.validate(nil, requestedFrom, requestedTo), req)
}

// GetReportRequestListService lists report requests of the last 90 days.
type GetReportRequestListService struct {
	client *mws.Client
	filter filter
	raw    bool
}

func NewGetReportRequestListService(client *mws.Client) *GetReportRequestListService {
	return &GetReportRequestListService{client: client}
}

func (s *GetReportRequestListService) ReportRequestIDs(ids ...string) *GetReportRequestListService {
	s.filter.requestIDs = ids
	return s
}

func (s *GetReportRequestListService) ReportTypes(types ...ReportType) *GetReportRequestListService {
	s.filter.types = types
	return s
}

func (s *GetReportRequestListService) ProcessingStatuses(statuses ...ProcessingStatus) *GetReportRequestListService {
	s.filter.statuses = statuses
	return s
}

func (s *GetReportRequestListService) MaxCount(n int) *GetReportRequestListService {
	s.filter.maxCount = &n
	return s
}

func (s *GetReportRequestListService) RequestedFromDate(t time.Time) *GetReportRequestListService {
	s.filter.from = &t
	return s
}

func (s *GetReportRequestListService) RequestedToDate(t time.Time) *GetReportRequestListService {
	s.filter.to = &t
	return s
}

func (s *GetReportRequestListService) RawOutput(raw bool) *GetReportRequestListService {
	s.raw = raw
	return s
}

func (s *GetReportRequestListService) Validate() error {
	return svc.ValidationError(subsys, "GetReportRequestListService.Validate", s.filter.validate(nil, requestedFrom, requestedTo))
}

func (s *GetReportRequestListService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionReports, "GetReportRequestList")
	s.filter.params(req.Params, requestedFrom, requestedTo)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetReportRequestListService.Do", s.filter.validate(nil, requestedFrom, requestedTo), req)
}

// GetReportRequestListByNextTokenService fetches the next page of
// GetReportRequestList.
type GetReportRequestListByNextTokenService struct {
	client    *mws.Client
	nextToken string
	raw       bool
}

func NewGetReportRequestListByNextTokenService(client *mws.Client) *GetReportRequestListByNextTokenService {
	return &GetReportRequestListByNextTokenService{client: client}
}

func (s *GetReportRequestListByNextTokenService) NextToken(token string) *GetReportRequestListByNextTokenService {
	s.nextToken = token
	return s
}

func (s *GetReportRequestListByNextTokenService) RawOutput(raw bool) *GetReportRequestListByNextTokenService {
	s.raw = raw
	return s
}

func (s *GetReportRequestListByNextTokenService) Validate() error {
	return svc.ValidationError(subsys, "GetReportRequestListByNextTokenService.Validate", requireToken(s.nextToken))
}

func (s *GetReportRequestListByNextTokenService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionReports, "GetReportRequestListByNextToken")
	req.Params.Set("NextToken", s.nextToken)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetReportRequestListByNextTokenService.Do", requireToken(s.nextToken), req)
}

// CancelReportRequestsService cancels pending report requests. Without
// filters it cancels every request that has not started.
type CancelReportRequestsService struct {
	client *mws.Client
	filter filter
	raw    bool
}

func NewCancelReportRequestsService(client *mws.Client) *CancelReportRequestsService {
	return &CancelReportRequestsService{client: client}
}

func (s *CancelReportRequestsService) ReportRequestIDs(ids ...string) *CancelReportRequestsService {
	s.filter.requestIDs = ids
	return s
}

func (s *CancelReportRequestsService) ReportTypes(types ...ReportType) *CancelReportRequestsService {
	s.filter.types = types
	return s
}

func (s *CancelReportRequestsService) ProcessingStatuses(statuses ...ProcessingStatus) *CancelReportRequestsService {
	s.filter.statuses = statuses
	return s
}

func (s *CancelReportRequestsService) RequestedFromDate(t time.Time) *CancelReportRequestsService {
	s.filter.from = &t
	return s
}

func (s *CancelReportRequestsService) RequestedToDate(t time.Time) *CancelReportRequestsService {
	s.filter.to = &t
	return s
}

func (s *CancelReportRequestsService) RawOutput(raw bool) *CancelReportRequestsService {
	s.raw = raw
	return s
}

func (s *CancelReportRequestsService) Validate() error {
	return svc.ValidationError(subsys, "CancelReportRequestsService.Validate", s.filter.validate(nil, requestedFrom, requestedTo))
}

func (s *CancelReportRequestsService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionReports, "CancelReportRequests")
	s.filter.params(req.Params, requestedFrom, requestedTo)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "CancelReportRequestsService.Do", s.filter.validate(nil, requestedFrom, requestedTo), req)
}
