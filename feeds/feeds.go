// Package feeds wraps the Feeds API section (2009-01-01). Feed operations
// live at the service root and identify the seller with the Merchant key.
package feeds

import (
	"context"
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/signature"
	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
)

const subsys = "feeds"

const (
	maxMarketplaces  = 20
	maxSubmissionIDs = 100
	maxCount         = 100
)

// SubmitFeedService uploads a feed document.
type SubmitFeedService struct {
	client          *mws.Client
	feedType        FeedType
	body            []byte
	contentType     string
	marketplaceIDs  []string
	purgeAndReplace *bool
	raw             bool
}

func NewSubmitFeedService(client *mws.Client) *SubmitFeedService {
	return &SubmitFeedService{client: client}
}

func (s *SubmitFeedService) FeedType(t FeedType) *SubmitFeedService {
	s.feedType = t
	return s
}

// Body sets the feed document. It is sent unmodified.
func (s *SubmitFeedService) Body(body []byte) *SubmitFeedService {
	s.body = body
	return s
}

// ContentType of the body. Flat files use "text/tab-separated-values;
// charset=iso-8859-1"; the default is text/xml.
func (s *SubmitFeedService) ContentType(ct string) *SubmitFeedService {
	s.contentType = ct
	return s
}

func (s *SubmitFeedService) MarketplaceIDs(ids ...string) *SubmitFeedService {
	s.marketplaceIDs = ids
	return s
}

// PurgeAndReplace replaces the whole catalog with the feed. MWS allows this
// once every 24 hours.
func (s *SubmitFeedService) PurgeAndReplace(v bool) *SubmitFeedService {
	s.purgeAndReplace = &v
	return s
}

func (s *SubmitFeedService) RawOutput(raw bool) *SubmitFeedService {
	s.raw = raw
	return s
}

func (s *SubmitFeedService) Validate() error {
	return svc.ValidationError(subsys, "SubmitFeedService.Validate", s.validate())
}

func (s *SubmitFeedService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionFeeds, "SubmitFeed")
	req.Params.
		Set("FeedType", string(s.feedType)).
		Set("ContentMD5Value", signature.ContentMD5(s.body)).
		SetList("MarketplaceIdList.Id", s.marketplaceIDs...)
	if s.purgeAndReplace != nil {
		req.Params.SetBool("PurgeAndReplace", *s.purgeAndReplace)
	}
	req.Body = s.body
	req.ContentType = s.contentType
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "SubmitFeedService.Do", s.validate(), req)
}

func (s *SubmitFeedService) validate() []string {
	var errs []string
	if s.feedType == "" {
		errs = append(errs, "feedType is required")
	} else {
		errs = svc.CheckEnum(errs, "feedType", FeedTypes, s.feedType)
	}
	if len(s.body) == 0 {
		errs = append(errs, "body is required")
	}
	return svc.CheckCount(errs, "marketplaceIds", len(s.marketplaceIDs), 0, maxMarketplaces)
}

// submissionFilter holds the filters shared by the list, count and cancel
// operations.
type submissionFilter struct {
	ids      []string
	types    []FeedType
	statuses []ProcessingStatus
	from     *time.Time
	to       *time.Time
}

func (f *submissionFilter) validate(errs []string) []string {
	errs = svc.CheckCount(errs, "feedSubmissionIds", len(f.ids), 0, maxSubmissionIDs)
	errs = svc.CheckEnum(errs, "feedType", FeedTypes, f.types...)
	errs = svc.CheckEnum(errs, "feedProcessingStatus", ProcessingStatuses, f.statuses...)
	if f.from != nil && f.to != nil && !f.from.Before(*f.to) {
		errs = append(errs, "submittedFromDate must be before submittedToDate")
	}
	return errs
}

func (f *submissionFilter) params(p mws.Params) {
	p.SetList("FeedSubmissionIdList.Id", f.ids...)
	p.SetList("FeedTypeList.Type", svc.Strings(f.types)...)
	p.SetList("FeedProcessingStatusList.Status", svc.Strings(f.statuses)...)
	if f.from != nil {
		p.SetTime("SubmittedFromDate", *f.from)
	}
	if f.to != nil {
		p.SetTime("SubmittedToDate", *f.to)
	}
}

// GetFeedSubmissionListService lists feed submissions of the last 90 days.
type GetFeedSubmissionListService struct {
	client   *mws.Client
	filter   submissionFilter
	maxCount *int
	raw      bool
}

func NewGetFeedSubmissionListService(client *mws.Client) *GetFeedSubmissionListService {
	return &GetFeedSubmissionListService{client: client}
}

func (s *GetFeedSubmissionListService) FeedSubmissionIDs(ids ...string) *GetFeedSubmissionListService {
	s.filter.ids = ids
	return s
}

func (s *GetFeedSubmissionListService) FeedTypes(types ...FeedType) *GetFeedSubmissionListService {
	s.filter.types = types
	return s
}

func (s *GetFeedSubmissionListService) ProcessingStatuses(statuses ...ProcessingStatus) *GetFeedSubmissionListService {
	s.filter.statuses = statuses
	return s
}

func (s *GetFeedSubmissionListService) SubmittedFromDate(t time.Time) *GetFeedSubmissionListService {
	s.filter.from = &t
	return s
}

func (s *GetFeedSubmissionListService) SubmittedToDate(t time.Time) *GetFeedSubmissionListService {
	s.filter.to = &t
	return s
}

// MaxCount limits the page size, 1 to 100. MWS defaults to 10.
func (s *GetFeedSubmissionListService) MaxCount(n int) *GetFeedSubmissionListService {
	s.maxCount = &n
	return s
}

func (s *GetFeedSubmissionListService) RawOutput(raw bool) *GetFeedSubmissionListService {
	s.raw = raw
	return s
}

func (s *GetFeedSubmissionListService) Validate() error {
	return svc.ValidationError(subsys, "GetFeedSubmissionListService.Validate", s.validate())
}

func (s *GetFeedSubmissionListService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionFeeds, "GetFeedSubmissionList")
	s.filter.params(req.Params)
	if s.maxCount != nil {
		req.Params.SetInt("MaxCount", int64(*s.maxCount))
	}
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetFeedSubmissionListService.Do", s.validate(), req)
}

func (s *GetFeedSubmissionListService) validate() []string {
	errs := s.filter.validate(nil)
	if s.maxCount != nil && (*s.maxCount < 1 || *s.maxCount > maxCount) {
		errs = append(errs, "maxCount must be between 1 and 100")
	}
	return errs
}

// GetFeedSubmissionListByNextTokenService fetches the next page of
// GetFeedSubmissionList.
type GetFeedSubmissionListByNextTokenService struct {
	client    *mws.Client
	nextToken string
	raw       bool
}

func NewGetFeedSubmissionListByNextTokenService(client *mws.Client) *GetFeedSubmissionListByNextTokenService {
	return &GetFeedSubmissionListByNextTokenService{client: client}
}

func (s *GetFeedSubmissionListByNextTokenService) NextToken(token string) *GetFeedSubmissionListByNextTokenService {
	s.nextToken = token
	return s
}

func (s *GetFeedSubmissionListByNextTokenService) RawOutput(raw bool) *GetFeedSubmissionListByNextTokenService {
	s.raw = raw
	return s
}

func (s *GetFeedSubmissionListByNextTokenService) Validate() error {
	return svc.ValidationError(subsys, "GetFeedSubmissionListByNextTokenService.Validate", s.validate())
}

func (s *GetFeedSubmissionListByNextTokenService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionFeeds, "GetFeedSubmissionListByNextToken")
	req.Params.Set("NextToken", s.nextToken)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetFeedSubmissionListByNextTokenService.Do", s.validate(), req)
}

func (s *GetFeedSubmissionListByNextTokenService) validate() []string {
	if s.nextToken == "" {
		return []string{"nextToken is required"}
	}
	return nil
}

// GetFeedSubmissionCountService counts feed submissions of the last 90 days.
type GetFeedSubmissionCountService struct {
	client *mws.Client
	filter submissionFilter
	raw    bool
}

func NewGetFeedSubmissionCountService(client *mws.Client) *GetFeedSubmissionCountService {
	return &GetFeedSubmissionCountService{client: client}
}

func (s *GetFeedSubmissionCountService) FeedTypes(types ...FeedType) *GetFeedSubmissionCountService {
	s.filter.types = types
	return s
}

func (s *GetFeedSubmissionCountService) ProcessingStatuses(statuses ...ProcessingStatus) *GetFeedSubmissionCountService {
	s.filter.statuses = statuses
	return s
}

func (s *GetFeedSubmissionCountService) SubmittedFromDate(t time.Time) *GetFeedSubmissionCountService {
	s.filter.from = &t
	return s
}

func (s *GetFeedSubmissionCountService) SubmittedToDate(t time.Time) *GetFeedSubmissionCountService {
	s.filter.to = &t
	return s
}

func (s *GetFeedSubmissionCountService) RawOutput(raw bool) *GetFeedSubmissionCountService {
	s.raw = raw
	return s
}

func (s *GetFeedSubmissionCountService) Validate() error {
	return svc.ValidationError(subsys, "GetFeedSubmissionCountService.Validate", s.filter.validate(nil))
}

func (s *GetFeedSubmissionCountService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionFeeds, "GetFeedSubmissionCount")
	s.filter.params(req.Params)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetFeedSubmissionCountService.Do", s.filter.validate(nil), req)
}

// CancelFeedSubmissionsService cancels submissions that have not started
// processing. Without filters it cancels all of them.
type CancelFeedSubmissionsService struct {
	client *mws.Client
	filter submissionFilter
	raw    bool
}

func NewCancelFeedSubmissionsService(client *mws.Client) *CancelFeedSubmissionsService {
	return &CancelFeedSubmissionsService{client: client}
}

func (s *CancelFeedSubmissionsService) FeedSubmissionIDs(ids ...string) *CancelFeedSubmissionsService {
	s.filter.ids = ids
	return s
}

func (s *CancelFeedSubmissionsService) FeedTypes(types ...FeedType) *CancelFeedSubmissionsService {
	s.filter.types = types
	return s
}

func (s *CancelFeedSubmissionsService) SubmittedFromDate(t time.Time) *CancelFeedSubmissionsService {
	s.filter.from = &t
	return s
}

func (s *CancelFeedSubmissionsService) SubmittedToDate(t time.Time) *CancelFeedSubmissionsService {
	s.filter.to = &t
	return s
}

func (s *CancelFeedSubmissionsService) RawOutput(raw bool) *CancelFeedSubmissionsService {
	s.raw = raw
	return s
}

func (s *CancelFeedSubmissionsService) Validate() error {
	return svc.ValidationError(subsys, "CancelFeedSubmissionsService.Validate", s.filter.validate(nil))
}

func (s *CancelFeedSubmissionsService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionFeeds, "CancelFeedSubmissions")
	s.filter.params(req.Params)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "CancelFeedSubmissionsService.Do", s.filter.validate(nil), req)
}

// GetFeedSubmissionResultService downloads the processing report of a
// feed. The report is returned raw unless RawOutput(false) is set.
type GetFeedSubmissionResultService struct {
	client       *mws.Client
	submissionID string
	raw          bool
}

func NewGetFeedSubmissionResultService(client *mws.Client) *GetFeedSubmissionResultService {
	return &GetFeedSubmissionResultService{client: client, raw: true}
}

func (s *GetFeedSubmissionResultService) FeedSubmissionID(id string) *GetFeedSubmissionResultService {
	s.submissionID = id
	return s
}

func (s *GetFeedSubmissionResultService) RawOutput(raw bool) *GetFeedSubmissionResultService {
	s.raw = raw
	return s
}

func (s *GetFeedSubmissionResultService) Validate() error {
	return svc.ValidationError(subsys, "GetFeedSubmissionResultService.Validate", s.validate())
}

func (s *GetFeedSubmissionResultService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionFeeds, "GetFeedSubmissionResult")
	req.Params.Set("FeedSubmissionId", s.submissionID)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetFeedSubmissionResultService.Do", s.validate(), req)
}

func (s *GetFeedSubmissionResultService) validate() []string {
	if s.submissionID == "" {
		return []string{"feedSubmissionId is required"}
	}
	return nil
}
