package spacecraft

import (
	"context"
	"net/url"
	"testing"

	"go-hangar/app/internal/errcode"
	"go-hangar/app/internal/testdb"
	"go-hangar/app/model"
	"go-hangar/app/pkg/notify"
	"go-hangar/app/service/common"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

func newService(t *testing.T) (*Service, *notify.Subscriber) {
	hub := notify.NewHub(nil)
	return NewService(zap.NewNop(), testdb.New(t), hub), hub.Subscribe()
}

func seed(t *testing.T, srv *Service) {
	for _, r := range []SaveReq{
		{Name: ptr("Vostok"), MaxSpeed: ptr(28000), Weight: ptr(4725)},
		{Name: ptr("Apollo"), MaxSpeed: ptr(39000), Weight: ptr(45000)},
		{Name: ptr("Shuttle"), MaxSpeed: ptr(28000), Weight: ptr(78000)},
		{Name: ptr("Soyuz"), MaxSpeed: ptr(28000), Weight: ptr(7150)},
		{Name: ptr("Glider"), MaxSpeed: ptr(1200), Weight: ptr(900)},
	} {
		r := r
		if _, err := srv.Create(context.Background(), &r); err != nil {
			t.Fatal("seed", err)
		}
	}
}

func list(t *testing.T, srv *Service, raw string) *ListRes {
	values, _ := url.ParseQuery(raw)
	res, err := srv.List(context.Background(), common.ParseListReq(values))
	if err != nil {
		t.Fatal("list", err)
	}
	return res
}

func TestCreateAndList(t *testing.T) {
	srv, sub := newService(t)
	m, err := srv.Create(context.Background(), &SaveReq{Name: ptr("Falcon9"), MaxSpeed: ptr(27000), Weight: ptr(25000)})
	if err != nil {
		t.Fatal("create", err)
	}
	if m.ID == 0 {
		t.Error("id must be assigned")
	}
	if e := <-sub.C; e.Type != notify.SpacecraftCreated || e.SpacecraftId != m.ID {
		t.Error("unexpected event", e)
	}
	res := list(t, srv, "")
	if res.Count != 1 || len(res.Records) != 1 || res.Records[0].Name != "Falcon9" {
		t.Error("created spacecraft must be listed", res)
	}
}

func TestCreateValidation(t *testing.T) {
	srv, _ := newService(t)
	for _, r := range []SaveReq{
		{Name: ptr("F9"), MaxSpeed: ptr(27000), Weight: ptr(25000)},
		{Name: ptr("Falcon9"), MaxSpeed: ptr(999), Weight: ptr(25000)},
		{Name: ptr("Falcon9"), MaxSpeed: ptr(27000), Weight: ptr(10)},
		{Name: ptr("Falcon9")},
	} {
		r := r
		if _, err := srv.Create(context.Background(), &r); !errcode.ErrValidation.Has(err) {
			t.Error("expected validation error, got", err)
		}
	}
	if res := list(t, srv, ""); res.Count != 0 {
		t.Error("invalid records must not be stored", res.Count)
	}
}

func TestListFilterSortPage(t *testing.T) {
	srv, _ := newService(t)
	seed(t, srv)

	res := list(t, srv, "maxSpeed=20000&sortField=weight&sortOrder=-1&page=0&pageSize=2")
	if len(res.Records) != 2 {
		t.Fatal("expected two records", len(res.Records))
	}
	if res.Records[0].Name != "Shuttle" || res.Records[1].Name != "Apollo" {
		t.Error("unexpected order", res.Records[0].Name, res.Records[1].Name)
	}
	for _, r := range res.Records {
		if r.MaxSpeed < 20000 {
			t.Error("filter not applied", r)
		}
	}
	if res.Count != 4 {
		t.Error("count must reflect the filtered set", res.Count)
	}

	res = list(t, srv, "weight=5000&maxSpeed=20000&sortField=weight&page=1&pageSize=2")
	if len(res.Records) != 1 || res.Records[0].Name != "Shuttle" {
		t.Error("unexpected second page", res.Records)
	}

	res = list(t, srv, "page=abc&pageSize=1")
	if len(res.Records) != 5 {
		t.Error("unparseable page must not paginate", len(res.Records))
	}

	res = list(t, srv, "page=0")
	if len(res.Records) != 3 || res.Count != 5 {
		t.Error("default page size is 3", len(res.Records), res.Count)
	}

	res = list(t, srv, "name=Glider&color=red")
	if len(res.Records) != 5 {
		t.Error("unknown filters must be ignored", len(res.Records))
	}
}

func TestListPreloadsAstronauts(t *testing.T) {
	srv, _ := newService(t)
	m, _ := srv.Create(context.Background(), &SaveReq{Name: ptr("Vostok"), MaxSpeed: ptr(28000), Weight: ptr(4725)})
	srv.db.Create(&model.Astronaut{Name: "Yuri Gagarin", Role: "PILOT", SpacecraftId: m.ID})

	res := list(t, srv, "page=0")
	if len(res.Records[0].Astronauts) != 1 || res.Records[0].Astronauts[0].Name != "Yuri Gagarin" {
		t.Error("astronauts must be preloaded", res.Records[0].Astronauts)
	}
	d, err := srv.Detail(context.Background(), m.ID)
	if err != nil || len(d.Astronauts) != 1 {
		t.Error("detail must include astronauts", d, err)
	}
}

func TestUpdate(t *testing.T) {
	srv, sub := newService(t)
	m, _ := srv.Create(context.Background(), &SaveReq{Name: ptr("Falcon9"), MaxSpeed: ptr(27000), Weight: ptr(25000)})
	<-sub.C

	if err := srv.Update(context.Background(), m.ID, &SaveReq{Weight: ptr(26000)}); err != nil {
		t.Fatal("partial update", err)
	}
	if e := <-sub.C; e.Type != notify.SpacecraftUpdated {
		t.Error("unexpected event", e)
	}
	d, _ := srv.Detail(context.Background(), m.ID)
	if d.Weight != 26000 || d.Name != "Falcon9" || d.MaxSpeed != 27000 {
		t.Error("partial update must keep other fields", d)
	}

	if err := srv.Update(context.Background(), m.ID, &SaveReq{MaxSpeed: ptr(10)}); !errcode.ErrValidation.Has(err) {
		t.Error("expected validation error, got", err)
	}
	d, _ = srv.Detail(context.Background(), m.ID)
	if d.MaxSpeed != 27000 {
		t.Error("invalid update must not be stored", d.MaxSpeed)
	}

	err := srv.Update(context.Background(), 999, &SaveReq{Weight: ptr(26000)})
	if msg, ok := errcode.Message(err); !ok || msg != "not found" {
		t.Error("expected not found, got", err)
	}
}

func TestDeleteCascades(t *testing.T) {
	srv, _ := newService(t)
	m, _ := srv.Create(context.Background(), &SaveReq{Name: ptr("Vostok"), MaxSpeed: ptr(28000), Weight: ptr(4725)})
	other, _ := srv.Create(context.Background(), &SaveReq{Name: ptr("Soyuz"), MaxSpeed: ptr(28000), Weight: ptr(7150)})
	srv.db.Create(&model.Astronaut{Name: "Yuri Gagarin", Role: "PILOT", SpacecraftId: m.ID})
	srv.db.Create(&model.Astronaut{Name: "Alexei Leonov", Role: "COMMANDER", SpacecraftId: other.ID})

	if err := srv.Delete(context.Background(), m.ID); err != nil {
		t.Fatal("delete", err)
	}
	res := list(t, srv, "")
	if res.Count != 1 || res.Records[0].ID != other.ID {
		t.Error("deleted spacecraft must not be listed", res.Records)
	}
	var n int64
	srv.db.Model(&model.Astronaut{}).Count(&n)
	if n != 1 {
		t.Error("only the deleted spacecraft's crew must be removed", n)
	}

	if err := srv.Delete(context.Background(), m.ID); !errcode.IsNotFound(err) {
		t.Error("expected not found, got", err)
	}
}
