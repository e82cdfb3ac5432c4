package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-hangar/app/internal/constants"
	"go-hangar/app/model"
	"go-hangar/app/service/astronaut"
	"go-hangar/app/service/spacecraft"
)

// Client 通过HTTP访问飞船和宇航员接口
type Client struct {
	baseURL    string
	adminToken string
	httpClient *http.Client
}

// Error 非2xx响应
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

type Option func(*Client)

func WithAdminToken(token string) Option {
	return func(c *Client) { c.adminToken = token }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func spacecraftPath(id int64) string {
	return fmt.Sprintf("/spacecrafts/%d", id)
}

func crewPath(spacecraftId int64) string {
	return fmt.Sprintf("/spacecrafts/%d/astronauts", spacecraftId)
}

func (c *Client) Spacecrafts(ctx context.Context, view ViewState) (*spacecraft.ListRes, error) {
	res := &spacecraft.ListRes{}
	path := "/spacecrafts"
	if q := view.Values().Encode(); q != "" {
		path += "?" + q
	}
	if err := c.do(ctx, http.MethodGet, path, nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) Spacecraft(ctx context.Context, id int64) (*model.Spacecraft, error) {
	m := &model.Spacecraft{}
	if err := c.do(ctx, http.MethodGet, spacecraftPath(id), nil, m); err != nil {
		return nil, err
	}
	return m, nil
}

// AddSpacecraft 创建成功后按view重新拉取列表
func (c *Client) AddSpacecraft(ctx context.Context, req *spacecraft.SaveReq, view ViewState) (*spacecraft.ListRes, error) {
	if err := c.do(ctx, http.MethodPost, "/spacecrafts", req, nil); err != nil {
		return nil, err
	}
	return c.Spacecrafts(ctx, view)
}

func (c *Client) SaveSpacecraft(ctx context.Context, id int64, req *spacecraft.SaveReq, view ViewState) (*spacecraft.ListRes, error) {
	if err := c.do(ctx, http.MethodPut, spacecraftPath(id), req, nil); err != nil {
		return nil, err
	}
	return c.Spacecrafts(ctx, view)
}

func (c *Client) DeleteSpacecraft(ctx context.Context, id int64, view ViewState) (*spacecraft.ListRes, error) {
	if err := c.do(ctx, http.MethodDelete, spacecraftPath(id), nil, nil); err != nil {
		return nil, err
	}
	return c.Spacecrafts(ctx, view)
}

func (c *Client) Astronauts(ctx context.Context, spacecraftId int64) ([]*model.Astronaut, error) {
	list := make([]*model.Astronaut, 0)
	if err := c.do(ctx, http.MethodGet, crewPath(spacecraftId), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// AddAstronaut 创建成功后重新拉取该飞船的宇航员
func (c *Client) AddAstronaut(ctx context.Context, spacecraftId int64, req *astronaut.SaveReq) ([]*model.Astronaut, error) {
	if err := c.do(ctx, http.MethodPost, crewPath(spacecraftId), req, nil); err != nil {
		return nil, err
	}
	return c.Astronauts(ctx, spacecraftId)
}

func (c *Client) SaveAstronaut(ctx context.Context, spacecraftId, id int64, req *astronaut.SaveReq) ([]*model.Astronaut, error) {
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", crewPath(spacecraftId), id), req, nil); err != nil {
		return nil, err
	}
	return c.Astronauts(ctx, spacecraftId)
}

func (c *Client) DeleteAstronaut(ctx context.Context, spacecraftId, id int64) ([]*model.Astronaut, error) {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", crewPath(spacecraftId), id), nil, nil); err != nil {
		return nil, err
	}
	return c.Astronauts(ctx, spacecraftId)
}

// Sync 删除并重建全部表
func (c *Client) Sync(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/syncDB", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.adminToken != "" {
		req.Header.Set(constants.AdminTokenHeader, c.adminToken)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		if msg.Message == "" {
			msg.Message = resp.Status
		}
		return &Error{Status: resp.StatusCode, Message: msg.Message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
