package reports

import (
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
	"github.com/IvanTurko/mws-sdk-go/xmltree"
)

// ReportInfo describes a generated report.
type ReportInfo struct {
	ReportID         string
	ReportType       ReportType
	ReportRequestID  string
	AvailableDate    time.Time
	Acknowledged     bool
	AcknowledgedDate time.Time
}

// RequestInfo describes a report request.
type RequestInfo struct {
	ReportRequestID       string
	ReportType            ReportType
	StartDate             time.Time
	EndDate               time.Time
	Scheduled             bool
	SubmittedDate         time.Time
	ProcessingStatus      ProcessingStatus
	GeneratedReportID     string
	StartedProcessingDate time.Time
	CompletedDate         time.Time
}

// ScheduleInfo describes a report schedule.
type ScheduleInfo struct {
	ReportType    ReportType
	Schedule      Schedule
	ScheduledDate time.Time
}

// Page carries the paging fields of the list operations.
type Page struct {
	NextToken string
	HasNext   bool
}

// ParseReports decodes GetReportList, GetReportListByNextToken and
// UpdateReportAcknowledgements. A malformed date or flag is an
// ErrDecodeError.
func ParseReports(res *mws.Result) ([]ReportInfo, Page, error) {
	if res == nil || res.Tree == nil {
		return nil, Page{}, nil
	}
	var f svc.Fields
	var out []ReportInfo
	for _, n := range res.Tree.FindAll("ReportInfo") {
		out = append(out, ReportInfo{
			ReportID:         n.Child("ReportId").Text(),
			ReportType:       ReportType(n.Child("ReportType").Text()),
			ReportRequestID:  n.Child("ReportRequestId").Text(),
			AvailableDate:    f.Time(n.Child("AvailableDate")),
			Acknowledged:     f.Bool(n.Child("Acknowledged")),
			AcknowledgedDate: f.Time(n.Child("AcknowledgedDate")),
		})
	}
	p := page(&f, res.Tree)
	if err := f.Err(subsys, "ParseReports", res.Raw); err != nil {
		return nil, Page{}, err
	}
	return out, p, nil
}

// ParseRequests decodes RequestReport, GetReportRequestList(+ByNextToken)
// and CancelReportRequests.
func ParseRequests(res *mws.Result) ([]RequestInfo, Page, error) {
	if res == nil || res.Tree == nil {
		return nil, Page{}, nil
	}
	var f svc.Fields
	var out []RequestInfo
	for _, n := range res.Tree.FindAll("ReportRequestInfo") {
		out = append(out, RequestInfo{
			ReportRequestID:       n.Child("ReportRequestId").Text(),
			ReportType:            ReportType(n.Child("ReportType").Text()),
			StartDate:             f.Time(n.Child("StartDate")),
			EndDate:               f.Time(n.Child("EndDate")),
			Scheduled:             f.Bool(n.Child("Scheduled")),
			SubmittedDate:         f.Time(n.Child("SubmittedDate")),
			ProcessingStatus:      ProcessingStatus(n.Child("ReportProcessingStatus").Text()),
			GeneratedReportID:     n.Child("GeneratedReportId").Text(),
			StartedProcessingDate: f.Time(n.Child("StartedProcessingDate")),
			CompletedDate:         f.Time(n.Child("CompletedDate")),
		})
	}
	p := page(&f, res.Tree)
	if err := f.Err(subsys, "ParseRequests", res.Raw); err != nil {
		return nil, Page{}, err
	}
	return out, p, nil
}

// ParseSchedules decodes ManageReportSchedule and
// GetReportScheduleList(+ByNextToken).
func ParseSchedules(res *mws.Result) ([]ScheduleInfo, Page, error) {
	if res == nil || res.Tree == nil {
		return nil, Page{}, nil
	}
	var f svc.Fields
	var out []ScheduleInfo
	for _, n := range res.Tree.FindAll("ReportSchedule") {
		out = append(out, ScheduleInfo{
			ReportType:    ReportType(n.Child("ReportType").Text()),
			Schedule:      Schedule(n.Child("Schedule").Text()),
			ScheduledDate: f.Time(n.Child("ScheduledDate")),
		})
	}
	p := page(&f, res.Tree)
	if err := f.Err(subsys, "ParseSchedules", res.Raw); err != nil {
		return nil, Page{}, err
	}
	return out, p, nil
}

// ParseCount decodes every Get*Count operation of the section.
func ParseCount(res *mws.Result) (int64, error) {
	return svc.Count(subsys, "ParseCount", res)
}

func page(f *svc.Fields, tree *xmltree.Node) Page {
	return Page{
		NextToken: tree.FindFirst("NextToken").Text(),
		HasNext:   f.Bool(tree.FindFirst("HasNext")),
	}
}
