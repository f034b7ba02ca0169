package feeds

import (
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
	"github.com/IvanTurko/mws-sdk-go/sdkerr"
	"github.com/IvanTurko/mws-sdk-go/xmltree"
)

// Submission is one FeedSubmissionInfo entry.
type Submission struct {
	FeedSubmissionID        string
	FeedType                FeedType
	SubmittedDate           time.Time
	ProcessingStatus        ProcessingStatus
	StartedProcessingDate   time.Time
	CompletedProcessingDate time.Time
}

// SubmissionList is a decoded GetFeedSubmissionList page. SubmitFeed and
// CancelFeedSubmissions answer with the same entries.
type SubmissionList struct {
	Submissions []Submission
	NextToken   string
	HasNext     bool
}

// ProcessingReport summarizes the result document of a processed feed.
type ProcessingReport struct {
	DocumentTransactionID string
	StatusCode            string
	MessagesProcessed     int64
	MessagesSuccessful    int64
	MessagesWithError     int64
	MessagesWithWarning   int64
	Results               []ProcessingResult
}

// ProcessingResult is one error or warning of a ProcessingReport.
type ProcessingResult struct {
	MessageID   string
	ResultCode  string
	MessageCode string
	Description string
	SKU         string
}

// ParseSubmissions decodes every FeedSubmissionInfo of res. A malformed
// date or HasNext flag is an ErrDecodeError.
func ParseSubmissions(res *mws.Result) (*SubmissionList, error) {
	out := &SubmissionList{}
	if res == nil || res.Tree == nil {
		return out, nil
	}
	var f svc.Fields
	for _, n := range res.Tree.FindAll("FeedSubmissionInfo") {
		out.Submissions = append(out.Submissions, Submission{
			FeedSubmissionID:        n.Child("FeedSubmissionId").Text(),
			FeedType:                FeedType(n.Child("FeedType").Text()),
			SubmittedDate:           f.Time(n.Child("SubmittedDate")),
			ProcessingStatus:        ProcessingStatus(n.Child("FeedProcessingStatus").Text()),
			StartedProcessingDate:   f.Time(n.Child("StartedProcessingDate")),
			CompletedProcessingDate: f.Time(n.Child("CompletedProcessingDate")),
		})
	}
	out.NextToken = res.Tree.FindFirst("NextToken").Text()
	out.HasNext = f.Bool(res.Tree.FindFirst("HasNext"))
	if err := f.Err(subsys, "ParseSubmissions", res.Raw); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseCount decodes GetFeedSubmissionCount and the Count of
// CancelFeedSubmissions.
func ParseCount(res *mws.Result) (int64, error) {
	return svc.Count(subsys, "ParseCount", res)
}

// ParseProcessingReport decodes the body of GetFeedSubmissionResult.
func ParseProcessingReport(raw []byte) (*ProcessingReport, error) {
	tree, err := xmltree.Parse(raw)
	if err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("ParseProcessingReport").
			WithKind(sdkerr.ErrDecodeError).
			WithCause(&mws.DecodeError{Body: raw, Err: err})
	}
	report := tree.FindFirst("ProcessingReport")
	if report == nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("ParseProcessingReport").
			WithKind(sdkerr.ErrDecodeError).
			WithMessage("document has no ProcessingReport")
	}

	out := &ProcessingReport{
		DocumentTransactionID: report.Child("DocumentTransactionID").Text(),
		StatusCode:            report.Child("StatusCode").Text(),
	}
	var f svc.Fields
	summary := report.Child("ProcessingSummary")
	out.MessagesProcessed = f.Int(summary.Child("MessagesProcessed"))
	out.MessagesSuccessful = f.Int(summary.Child("MessagesSuccessful"))
	out.MessagesWithError = f.Int(summary.Child("MessagesWithError"))
	out.MessagesWithWarning = f.Int(summary.Child("MessagesWithWarning"))
	if err := f.Err(subsys, "ParseProcessingReport", raw); err != nil {
		return nil, err
	}

	for _, r := range report.ChildrenNamed("Result") {
		out.Results = append(out.Results, ProcessingResult{
			MessageID:   r.Child("MessageID").Text(),
			ResultCode:  r.Child("ResultCode").Text(),
			MessageCode: r.Child("ResultMessageCode").Text(),
			Description: r.Child("ResultDescription").Text(),
			SKU:         r.Find("AdditionalInfo", "SKU").Text(),
		})
	}
	return out, nil
}
