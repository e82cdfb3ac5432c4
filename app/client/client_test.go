package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hangar/app/api"
	"go-hangar/app/global"
	"go-hangar/app/internal/testdb"
	"go-hangar/app/service/astronaut"
	"go-hangar/app/service/spacecraft"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

func newClient(t *testing.T, opts ...Option) *Client {
	conf := &global.Config{}
	conf.Admin.Enable = true
	conf.Admin.Token = "token"
	h, err := api.NewServer(conf, zap.NewNop(), testdb.New(t), nil, nil, nil).Handler()
	if err != nil {
		t.Fatal("handler", err)
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", opts...)
}

func TestViewStateValues(t *testing.T) {
	v := NewViewState()
	if got := v.Values().Encode(); got != "page=0&pageSize=3" {
		t.Error("unexpected default query", got)
	}
	v = v.Filter("weight", "5000").Filter("maxSpeed", "20000").Filter("color", "")
	v = v.SortBy("weight").SortBy("weight")
	page := 2
	v.Page = &page
	got := v.Values().Encode()
	if got != "maxSpeed=20000&page=2&pageSize=3&sortField=weight&sortOrder=-1&weight=5000" {
		t.Error("unexpected query", got)
	}
	if v = v.Filter("weight", "6000"); *v.Page != 0 {
		t.Error("filter must reset page", *v.Page)
	}
	v.Page = nil
	if _, ok := v.Values()["page"]; ok {
		t.Error("nil page must not paginate")
	}
}

func TestSpacecraftRoundTrip(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()
	view := NewViewState().SortBy("weight")

	res, err := c.AddSpacecraft(ctx, &spacecraft.SaveReq{Name: ptr("Vostok"), MaxSpeed: ptr(28000), Weight: ptr(4725)}, view)
	if err != nil || res.Count != 1 {
		t.Fatal("add", res, err)
	}
	res, err = c.AddSpacecraft(ctx, &spacecraft.SaveReq{Name: ptr("Apollo"), MaxSpeed: ptr(39000), Weight: ptr(45000)}, view)
	if err != nil || res.Count != 2 || res.Records[0].Name != "Vostok" {
		t.Fatal("add must re-fetch the view", res, err)
	}
	id := res.Records[1].ID

	res, err = c.SaveSpacecraft(ctx, id, &spacecraft.SaveReq{Weight: ptr(300)}, view)
	if err != nil || res.Records[0].Name != "Apollo" {
		t.Error("save must re-fetch the view", res, err)
	}
	m, err := c.Spacecraft(ctx, id)
	if err != nil || m.Weight != 300 || m.MaxSpeed != 39000 {
		t.Error("unexpected detail", m, err)
	}

	_, err = c.AddSpacecraft(ctx, &spacecraft.SaveReq{Name: ptr("F9")}, view)
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		t.Error("expected 400", err)
	}

	res, err = c.DeleteSpacecraft(ctx, id, view)
	if err != nil || res.Count != 1 {
		t.Error("delete must re-fetch the view", res, err)
	}
	_, err = c.DeleteSpacecraft(ctx, id, view)
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound || apiErr.Message != "not found" {
		t.Error("expected 404", err)
	}
}

func TestAstronautRoundTrip(t *testing.T) {
	c := newClient(t, WithAdminToken("token"))
	ctx := context.Background()
	res, err := c.AddSpacecraft(ctx, &spacecraft.SaveReq{Name: ptr("Vostok"), MaxSpeed: ptr(28000), Weight: ptr(4725)}, NewViewState())
	if err != nil {
		t.Fatal("add spacecraft", err)
	}
	sid := res.Records[0].ID

	crew, err := c.AddAstronaut(ctx, sid, &astronaut.SaveReq{Name: ptr("Yuri Gagarin"), Role: ptr("PILOT")})
	if err != nil || len(crew) != 1 || crew[0].SpacecraftId != sid {
		t.Fatal("add must re-fetch the crew", crew, err)
	}
	crew, err = c.SaveAstronaut(ctx, sid, crew[0].ID, &astronaut.SaveReq{Role: ptr("COMMANDER")})
	if err != nil || crew[0].Role != "COMMANDER" {
		t.Error("save must re-fetch the crew", crew, err)
	}
	crew, err = c.DeleteAstronaut(ctx, sid, crew[0].ID)
	if err != nil || len(crew) != 0 {
		t.Error("delete must re-fetch the crew", crew, err)
	}

	_, err = c.Astronauts(ctx, 5000)
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message != "spacecraft with id=5000 not found" {
		t.Error("expected parent not found", err)
	}

	if err = c.Sync(ctx); err != nil {
		t.Fatal("sync", err)
	}
	if res, err = c.Spacecrafts(ctx, NewViewState()); err != nil || res.Count != 0 {
		t.Error("sync must clear data", res, err)
	}
}
