package global

import (
	"context"
	"testing"

	"go-hangar/app/pkg/notify"
	"go.uber.org/zap"
)

func TestInitAdmin(t *testing.T) {
	Log = zap.NewNop()
	conf := &AdminConfig{Enable: true}
	if err := initAdmin(conf); err != nil {
		t.Fatal("init admin", err)
	}
	if len(conf.Token) != adminTokenLen {
		t.Error("token must be generated", conf.Token)
	}

	conf = &AdminConfig{Enable: true, Token: "fixed"}
	_ = initAdmin(conf)
	if conf.Token != "fixed" {
		t.Error("configured token must be kept", conf.Token)
	}

	conf = &AdminConfig{Enable: false}
	_ = initAdmin(conf)
	if conf.Token != "" {
		t.Error("disabled admin must not get a token", conf.Token)
	}
}

func TestInitEventsWithoutAmqp(t *testing.T) {
	Log = zap.NewNop()
	if err := initEvents(&notify.Config{}); err != nil {
		t.Fatal("init events", err)
	}
	if Hub == nil || Amqp != nil {
		t.Error("only the websocket hub must be enabled", Hub, Amqp)
	}
	sub := Hub.Subscribe()
	Publisher.Publish(context.Background(), notify.NewEvent(notify.DBSynced, 0, 0))
	if e := <-sub.C; e.Type != notify.DBSynced {
		t.Error("publisher must reach the hub", e)
	}
}
