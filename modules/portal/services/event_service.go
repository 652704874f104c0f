package services

import (
	"context"
	"slices"

	"github.com/go-faster/errors"

	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/event"
	"github.com/iota-uz/billing-portal/modules/portal/domain/pagination"
	"github.com/iota-uz/billing-portal/pkg/timezone"
)

type EventServiceConfig struct {
	Repo     event.Repository
	PageSize int
}

type EventService struct {
	repo     event.Repository
	pageSize int
}

func NewEventService(cfg EventServiceConfig) *EventService {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	return &EventService{repo: cfg.Repo, pageSize: cfg.PageSize}
}

func (s *EventService) Page(ctx context.Context, page int) (event.Page, error) {
	if page < 1 {
		page = 1
	}
	res, err := s.repo.List(ctx, event.FindParams{
		Page:  page,
		Limit: s.pageSize,
	})
	if err != nil {
		return event.Page{}, errors.Wrapf(err, "list events page %d", page)
	}
	return res, nil
}

// HasMore reports whether the fetch-more sentinel should be rendered.
func (s *EventService) HasMore(meta pagination.Metadata) bool {
	return meta.HasMore()
}

// IndexedEvent is an event with its position in the rendered list.
type IndexedEvent struct {
	Index int
	Event event.Event
}

type DateGroup struct {
	Date  string
	Items []IndexedEvent
	// Continued is true when a previous page already rendered this date, so
	// the items join that group instead of opening a new one.
	Continued bool
}

type GroupOptions struct {
	// Offset is the index given to the first rendered event.
	Offset int
	// After is the id of the last event rendered before this batch.
	After string
	// Seen lists the dates already rendered before this batch.
	Seen []string
}

// GroupByDate buckets events by their date in the formatter's timezone.
// Buckets follow the order of first appearance and events keep the server
// order inside a bucket. An event repeating the id of the previously
// rendered one is skipped and does not consume an index. Buckets whose date
// is in opts.Seen are marked Continued.
func (s *EventService) GroupByDate(events []event.Event, f timezone.Formatter, opts GroupOptions) []DateGroup {
	return GroupByDate(events, f, opts)
}

func GroupByDate(events []event.Event, f timezone.Formatter, opts GroupOptions) []DateGroup {
	buckets := make([][]event.Event, 0)
	dates := make([]string, 0)
	byDate := make(map[string]int)
	for _, e := range events {
		date := f.Date(e.Timestamp)
		pos, ok := byDate[date]
		if !ok {
			pos = len(buckets)
			byDate[date] = pos
			buckets = append(buckets, nil)
			dates = append(dates, date)
		}
		buckets[pos] = append(buckets[pos], e)
	}

	seen := make(map[string]bool, len(opts.Seen))
	for _, d := range opts.Seen {
		seen[d] = true
	}

	groups := make([]DateGroup, 0, len(buckets))
	previous := opts.After
	index := opts.Offset
	for pos, bucket := range buckets {
		group := DateGroup{Date: dates[pos]}
		for _, e := range bucket {
			if e.ID == previous {
				continue
			}
			group.Items = append(group.Items, IndexedEvent{Index: index, Event: e})
			index++
			previous = e.ID
		}
		if len(group.Items) == 0 {
			continue
		}
		group.Continued = seen[group.Date]
		groups = append(groups, group)
	}
	return groups
}

// LastRendered returns the id of the last event in groups and the number of
// events they hold.
func LastRendered(groups []DateGroup) (id string, count int) {
	for _, g := range groups {
		count += len(g.Items)
	}
	if len(groups) == 0 {
		return "", 0
	}
	last := groups[len(groups)-1]
	return last.Items[len(last.Items)-1].Event.ID, count
}

// SeenDates appends the dates of groups that are not in seen yet.
func SeenDates(seen []string, groups []DateGroup) []string {
	out := append([]string(nil), seen...)
	for _, g := range groups {
		if !g.Continued && !slices.Contains(out, g.Date) {
			out = append(out, g.Date)
		}
	}
	return out
}
