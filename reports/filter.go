package reports

import (
	"fmt"
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
)

const (
	maxCount      = 100
	maxIDs        = 100
	maxReportIDs  = 100
	availableFrom = "AvailableFromDate"
	availableTo   = "AvailableToDate"
	requestedFrom = "RequestedFromDate"
	requestedTo   = "RequestedToDate"
)

// filter holds the optional list filters the report operations share.
// Each operation only exposes the setters MWS accepts for it.
type filter struct {
	types        []ReportType
	statuses     []ProcessingStatus
	requestIDs   []string
	acknowledged *bool
	from         *time.Time
	to           *time.Time
	maxCount     *int
}

func (f *filter) validate(errs []string, fromKey, toKey string) []string {
	errs = svc.CheckEnum(errs, "reportType", ReportTypes, f.types...)
	errs = svc.CheckEnum(errs, "reportProcessingStatus", ProcessingStatuses, f.statuses...)
	errs = svc.CheckCount(errs, "reportRequestIds", len(f.requestIDs), 0, maxIDs)
	if f.from != nil && f.to != nil && !f.from.Before(*f.to) {
		errs = append(errs, fmt.Sprintf("%s must be before %s", fromKey, toKey))
	}
	if f.maxCount != nil && (*f.maxCount < 1 || *f.maxCount > maxCount) {
		errs = append(errs, "maxCount must be between 1 and 100")
	}
	return errs
}

func (f *filter) params(p mws.Params, fromKey, toKey string) {
	p.SetList("ReportTypeList.Type", svc.Strings(f.types)...)
	p.SetList("ReportProcessingStatusList.Status", svc.Strings(f.statuses)...)
	p.SetList("ReportRequestIdList.Id", f.requestIDs...)
	if f.acknowledged != nil {
		p.SetBool("Acknowledged", *f.acknowledged)
	}
	if f.from != nil {
		p.SetTime(fromKey, *f.from)
	}
	if f.to != nil {
		p.SetTime(toKey, *f.to)
	}
	if f.maxCount != nil {
		p.SetInt("MaxCount", int64(*f.maxCount))
	}
}
