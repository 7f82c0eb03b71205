package realtime

import (
	"context"

	"ContactBook/internal/modules/contact/domain/event"
	"ContactBook/pkg/ws"
)

// HubPublisher 把通讯录事件广播给所有 WebSocket 连接
type HubPublisher struct {
	hub *ws.Hub
}

func NewHubPublisher(hub *ws.Hub) *HubPublisher {
	return &HubPublisher{hub: hub}
}

func (p *HubPublisher) Publish(_ context.Context, evt event.ContactEvent) error {
	return p.hub.BroadcastJSON(evt)
}
