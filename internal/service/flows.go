package service

import (
	"sort"
	"time"

	"github.com/fsdevblog/groph-eats/internal/domain"
)

// EventFlow группа событий журнала подписки для таймлайна. Heuristic true
// означает что события попали в группу по дневной корзине, а не по общему
// идентификатору.
type EventFlow struct {
	Key       string
	Kind      string
	StartedAt time.Time
	EndedAt   time.Time
	Heuristic bool
	Events    []domain.SubscriptionEvent
}

const (
	flowKindFlowID    = "flow_id"
	flowKindRequestID = "request_id"
	flowKindVoucher   = "voucher_code"
	flowKindDayBucket = "day_bucket"
)

// GroupEventFlows группирует события журнала во флоу по общим идентификаторам.
//
// Приоритет группировки: flow_id, затем request_id, затем voucher_code. Легаси
// события без идентификаторов собираются в корзины по календарным дням (UTC) и
// помечаются как эвристические. Флоу упорядочены по самому свежему событию,
// внутри флоу сохраняется порядок occurred_at DESC. События не мутируются.
func GroupEventFlows(events []domain.SubscriptionEvent) []EventFlow {
	sorted := make([]domain.SubscriptionEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.After(sorted[j].OccurredAt)
	})

	type flowSlot struct {
		index int
	}

	var flows []EventFlow
	seen := make(map[string]flowSlot)

	appendTo := func(key, kind string, heuristic bool, event domain.SubscriptionEvent) {
		mapKey := kind + ":" + key
		if slot, ok := seen[mapKey]; ok {
			flow := &flows[slot.index]
			flow.Events = append(flow.Events, event)
			if event.OccurredAt.Before(flow.StartedAt) {
				flow.StartedAt = event.OccurredAt
			}
			return
		}
		seen[mapKey] = flowSlot{index: len(flows)}
		flows = append(flows, EventFlow{
			Key:       key,
			Kind:      kind,
			StartedAt: event.OccurredAt,
			EndedAt:   event.OccurredAt,
			Heuristic: heuristic,
			Events:    []domain.SubscriptionEvent{event},
		})
	}

	for _, event := range sorted {
		switch {
		case event.FlowID != "":
			appendTo(event.FlowID, flowKindFlowID, false, event)
		case event.RequestID != "":
			appendTo(event.RequestID, flowKindRequestID, false, event)
		case event.VoucherCode != "":
			appendTo(event.VoucherCode, flowKindVoucher, false, event)
		default:
			day := event.OccurredAt.UTC().Format(time.DateOnly)
			appendTo(day, flowKindDayBucket, true, event)
		}
	}

	// Первым событием флоу всегда будет самое свежее (вход отсортирован DESC),
	// поэтому порядок флоу по EndedAt совпадает с порядком их появления.
	return flows
}
