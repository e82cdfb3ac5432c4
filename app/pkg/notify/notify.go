package notify

import (
	"context"
	"time"
)

const (
	SpacecraftCreated = "spacecraft.created"
	SpacecraftUpdated = "spacecraft.updated"
	SpacecraftDeleted = "spacecraft.deleted"
	AstronautCreated  = "astronaut.created"
	AstronautUpdated  = "astronaut.updated"
	AstronautDeleted  = "astronaut.deleted"
	DBSynced          = "db.synced"
)

// Event 数据变更事件，客户端收到后重新拉取当前视图
type Event struct {
	Type         string    `json:"type"`
	SpacecraftId int64     `json:"spacecraftId,omitempty"`
	AstronautId  int64     `json:"astronautId,omitempty"`
	At           time.Time `json:"at"`
}

func NewEvent(typ string, spacecraftId, astronautId int64) Event {
	return Event{
		Type:         typ,
		SpacecraftId: spacecraftId,
		AstronautId:  astronautId,
		At:           time.Now().UTC(),
	}
}

// Publisher 发布失败不影响调用方
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) {}

type Publishers []Publisher

func (ps Publishers) Publish(ctx context.Context, e Event) {
	for _, p := range ps {
		p.Publish(ctx, e)
	}
}
