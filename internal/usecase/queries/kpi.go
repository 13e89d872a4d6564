package queries

import (
	"context"

	"leadpipe/internal/domain/lead"
	"leadpipe/internal/pkg/errs"
)

const (
	KPITypeLeads      = "leads"
	KPITypeNewsletter = "newsletter"
)

var ErrUnknownKPIType = errs.New("unknown kpi type")

type LeadKPIs struct {
	TotalLeads     int            `json:"totalLeads"`
	ContactRate    float64        `json:"contactRate"`
	InNegotiation  int            `json:"inNegotiation"`
	ConversionRate float64        `json:"conversionRate"`
	LeadsByStatus  map[string]int `json:"leadsByStatus"`
}

type NewsletterKPIs struct {
	TotalSubscribers       int `json:"totalSubscribers"`
	NewSubscribersInPeriod int `json:"newSubscribersInPeriod"`
}

// KPIReport is a tagged union: Type selects which payload is set, and
// exactly one of Leads/Newsletter is non-nil.
type KPIReport struct {
	Type       string          `json:"type"`
	Leads      *LeadKPIs       `json:"leads,omitempty"`
	Newsletter *NewsletterKPIs `json:"newsletter,omitempty"`
}

// ComputeLeadKPIs derives pipeline KPIs from the full lead set and a
// date filter on createdAt.
//
// TotalLeads deliberately counts the unfiltered set while every rate is
// computed over the filtered one. The dashboard has always shown the
// grand total next to period-scoped rates and its consumers rely on
// that, so the discrepancy is kept.
func ComputeLeadKPIs(all []*LeadView, rng DateRange) *LeadKPIs {
	kpis := &LeadKPIs{
		TotalLeads:    len(all),
		LeadsByStatus: make(map[string]int),
	}

	var filtered, contacted, closed int
	for _, lv := range all {
		if !rng.Contains(lv.CreatedAt) {
			continue
		}
		filtered++
		kpis.LeadsByStatus[lv.Status]++

		switch lv.Status {
		case lead.StatusNew.String():
			// not yet contacted
		case lead.StatusNegotiating.String():
			contacted++
			kpis.InNegotiation++
		case lead.StatusClosed.String():
			contacted++
			closed++
		default:
			contacted++
		}
	}

	// Rates are 0, not NaN, on an empty period.
	if filtered > 0 {
		kpis.ContactRate = float64(contacted) / float64(filtered) * 100
		kpis.ConversionRate = float64(closed) / float64(filtered) * 100
	}

	return kpis
}

// ComputeNewsletterKPIs mirrors ComputeLeadKPIs for subscribers, which
// carry no status breakdown.
func ComputeNewsletterKPIs(all []*SubscriberView, rng DateRange) *NewsletterKPIs {
	kpis := &NewsletterKPIs{
		TotalSubscribers: len(all),
	}
	for _, sv := range all {
		if rng.Contains(sv.CreatedAt) {
			kpis.NewSubscribersInPeriod++
		}
	}
	return kpis
}

type KPIQueries interface {
	Report(ctx context.Context, kpiType string, rng DateRange) (*KPIReport, error)
}

type kpiQueriesImpl struct {
	leads       LeadReadStore
	subscribers SubscriberReadStore
}

func NewKPIQueries(leads LeadReadStore, subscribers SubscriberReadStore) KPIQueries {
	return &kpiQueriesImpl{leads: leads, subscribers: subscribers}
}

func (q *kpiQueriesImpl) Report(ctx context.Context, kpiType string, rng DateRange) (*KPIReport, error) {
	switch kpiType {
	case KPITypeLeads:
		all, err := q.leads.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return &KPIReport{Type: KPITypeLeads, Leads: ComputeLeadKPIs(all, rng)}, nil

	case KPITypeNewsletter:
		all, err := q.subscribers.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return &KPIReport{Type: KPITypeNewsletter, Newsletter: ComputeNewsletterKPIs(all, rng)}, nil

	default:
		return nil, ErrUnknownKPIType
	}
}
