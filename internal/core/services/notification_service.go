package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/dto"
	"github.com/securyflex/securyflex-backend/internal/platform/metrics"
	"github.com/securyflex/securyflex-backend/internal/utils/pagination"
)

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepository
	broadcaster      portssvc.Broadcaster
	dispatchers      []portssvc.ChannelDispatcher
}

// NewNotificationService creates the notification fan-out service.
func NewNotificationService(
	notificationRepo portsrepo.NotificationRepository,
	broadcaster portssvc.Broadcaster,
	dispatchers ...portssvc.ChannelDispatcher,
) portssvc.NotificationSvcFacade {
	return &notificationService{
		notificationRepo: notificationRepo,
		broadcaster:      broadcaster,
		dispatchers:      dispatchers,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) ListForUser(ctx context.Context, userID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error) {
	var before *time.Time
	if params.Cursor != "" {
		cursorTime, err := pagination.DecodeDateBasedToken(params.Cursor)
		if err != nil {
			return nil, err
		}
		before = &cursorTime
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	notifications, err := s.notificationRepo.ListByUser(ctx, userID, params.UnreadOnly, before, limit)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListNotificationsResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(notifications)),
	}
	for i := range notifications {
		resp.Notifications = append(resp.Notifications, dto.ToNotificationResponse(&notifications[i]))
	}
	if len(notifications) == limit {
		resp.NextCursor = pagination.EncodeDateBasedToken(notifications[len(notifications)-1].CreatedAt)
	}
	return resp, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID string, notificationID string) error {
	return s.notificationRepo.MarkRead(ctx, notificationID, userID)
}

// DispatchEvent maps an outbox event to its notifications and delivers them.
// Channel and broadcast failures are logged but never fail the dispatch:
// the durable notification row is the source of truth.
func (s *notificationService) DispatchEvent(ctx context.Context, event domain.OutboxEvent) error {
	notifications, err := buildNotifications(event)
	if err != nil {
		return err
	}

	for i := range notifications {
		n := &notifications[i]
		if err := s.notificationRepo.SaveNotification(ctx, *n); err != nil {
			return err
		}

		if s.broadcaster != nil {
			if err := s.broadcaster.Publish(ctx, "user:"+n.UserID, dto.ToNotificationResponse(n)); err != nil {
				s.LogError(ctx, err, "broadcast failed", "notificationID", n.NotificationID)
			}
		}

		for _, dispatcher := range s.channelsFor(n.Priority) {
			result := "ok"
			if err := dispatcher.Dispatch(ctx, n.UserID, *n); err != nil {
				result = "error"
				s.LogError(ctx, err, "channel dispatch failed",
					"channel", dispatcher.Channel(),
					"notificationID", n.NotificationID)
			}
			metrics.NotificationsDispatched.WithLabelValues(dispatcher.Channel(), result).Inc()
		}
	}
	return nil
}

// channelsFor selects external channels by priority: urgent and high go out
// on every channel, medium only as push, low stays in-app.
func (s *notificationService) channelsFor(priority domain.NotificationPriority) []portssvc.ChannelDispatcher {
	switch priority {
	case domain.PriorityUrgent, domain.PriorityHigh:
		return s.dispatchers
	case domain.PriorityMedium:
		var push []portssvc.ChannelDispatcher
		for _, d := range s.dispatchers {
			if d.Channel() == "push" {
				push = append(push, d)
			}
		}
		return push
	}
	return nil
}

func buildNotifications(event domain.OutboxEvent) ([]domain.Notification, error) {
	now := time.Now()
	newNotification := func(userID string, t domain.NotificationType, category domain.NotificationCategory, priority domain.NotificationPriority, titel, bericht, actionURL string) domain.Notification {
		return domain.Notification{
			NotificationID: uuid.NewString(),
			UserID:         userID,
			Type:           t,
			Category:       category,
			Priority:       priority,
			Titel:          titel,
			Bericht:        bericht,
			ActionURL:      actionURL,
			CreatedAt:      now,
		}
	}

	switch event.Type {
	case domain.EventSollicitatieCreated, domain.EventSollicitatieAccepted, domain.EventSollicitatieRejected:
		var p domain.SollicitatieEventPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to decode sollicitatie event payload: %w", err)
		}
		var out []domain.Notification
		for _, userID := range p.TargetUserIDs {
			switch event.Type {
			case domain.EventSollicitatieCreated:
				out = append(out, newNotification(userID, domain.NotifySollicitatieCreated, domain.CategoryOpdracht, domain.PriorityMedium,
					"Nieuwe sollicitatie",
					fmt.Sprintf("Er is een nieuwe sollicitatie op '%s'.", p.OpdrachtTitel),
					"/opdrachten/"+p.OpdrachtID+"/sollicitaties"))
			case domain.EventSollicitatieAccepted:
				out = append(out, newNotification(userID, domain.NotifySollicitatieAccepted, domain.CategoryOpdracht, domain.PriorityHigh,
					"Sollicitatie geaccepteerd",
					fmt.Sprintf("Je sollicitatie op '%s' is geaccepteerd.", p.OpdrachtTitel),
					"/opdrachten/"+p.OpdrachtID))
			case domain.EventSollicitatieRejected:
				out = append(out, newNotification(userID, domain.NotifySollicitatieRejected, domain.CategoryOpdracht, domain.PriorityMedium,
					"Sollicitatie afgewezen",
					fmt.Sprintf("Je sollicitatie op '%s' is helaas afgewezen.", p.OpdrachtTitel),
					"/opdrachten"))
			}
		}
		return out, nil

	case domain.EventOpdrachtToegewezen, domain.EventOpdrachtStatusChange:
		var p domain.OpdrachtStatusEventPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to decode opdracht event payload: %w", err)
		}
		var out []domain.Notification
		for _, userID := range p.TargetUserIDs {
			switch {
			case event.Type == domain.EventOpdrachtToegewezen:
				out = append(out, newNotification(userID, domain.NotifyOpdrachtToegewezen, domain.CategoryOpdracht, domain.PriorityHigh,
					"Opdracht toegewezen",
					fmt.Sprintf("De opdracht '%s' is toegewezen.", p.OpdrachtTitel),
					"/opdrachten/"+p.OpdrachtID))
			case p.To == domain.OpdrachtCancelled:
				out = append(out, newNotification(userID, domain.NotifyOpdrachtCancelled, domain.CategoryOpdracht, domain.PriorityUrgent,
					"Opdracht geannuleerd",
					fmt.Sprintf("De opdracht '%s' is geannuleerd.", p.OpdrachtTitel),
					"/opdrachten"))
			}
		}
		return out, nil

	case domain.EventNDNummerExpiring:
		var p domain.LicenseEventPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to decode license event payload: %w", err)
		}
		priority := domain.PriorityMedium
		switch p.Notification {
		case domain.NotifyNDNummerExpiry30:
			priority = domain.PriorityUrgent
		case domain.NotifyNDNummerExpiry60:
			priority = domain.PriorityHigh
		}
		return []domain.Notification{newNotification(p.UserID, p.Notification, domain.CategoryCompliance, priority,
			"ND-nummer verloopt binnenkort",
			fmt.Sprintf("Je ND-nummer verloopt over %d dagen. Verleng je registratie op tijd.", p.DaysUntilExpiry),
			"/dashboard/compliance")}, nil

	case domain.EventNDNummerVerlopen:
		var p domain.LicenseEventPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to decode license event payload: %w", err)
		}
		return []domain.Notification{newNotification(p.UserID, domain.NotifyNDNummerVerlopen, domain.CategoryCompliance, domain.PriorityUrgent,
			"ND-nummer verlopen",
			"Je ND-nummer is verlopen. Je kunt niet meer solliciteren totdat je registratie is verlengd.",
			"/dashboard/compliance")}, nil

	case domain.EventBetalingUpdate:
		var p domain.BetalingEventPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to decode betaling event payload: %w", err)
		}
		titel := "Betaling bijgewerkt"
		bericht := fmt.Sprintf("De status van je betaling is nu %s.", p.Status)
		priority := domain.PriorityMedium
		if p.Status == domain.BetalingFailed {
			titel = "Betaling mislukt"
			bericht = "Een betaling aan jou is mislukt. " + p.Reason
			priority = domain.PriorityHigh
		}
		return []domain.Notification{newNotification(p.UserID, domain.NotifyBetalingUpdate, domain.CategoryBetaling, priority,
			titel, bericht, "/dashboard/betalingen")}, nil
	}

	return nil, fmt.Errorf("unknown event type %q", event.Type)
}
