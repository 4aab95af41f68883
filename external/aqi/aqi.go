package aqi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultURL     = "https://api.waqi.info/feed"
	defaultTimeout = 5 * time.Second
	indexNotFound  = -1
	statusOK       = "ok"
)

var (
	errResponseStatus = fmt.Errorf("response status no ok")
	errEmptyToken     = fmt.Errorf("empty token")
	errNoReading      = fmt.Errorf("station has no aqi reading")
)

// AQI reads the air quality index around a coordinate
type AQI interface {
	Get(lat, lng float64) (int, error)
}

type aqi struct {
	token  string
	url    string
	client *http.Client
}

type responseData struct {
	Aqi json.RawMessage `json:"aqi"`
}

type jsonResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func (a aqi) Get(lat, lng float64) (int, error) {
	if a.token == "" {
		return indexNotFound, errEmptyToken
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	// https://api.waqi.info/feed/geo:1.2;3.4/?token=xxxx
	query := fmt.Sprintf("%s/geo:%f;%f/?token=%s", a.url, lat, lng, a.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, query, nil)
	if nil != err {
		return indexNotFound, err
	}

	resp, err := a.client.Do(req)
	if nil != err {
		return indexNotFound, err
	}
	defer resp.Body.Close()

	var r jsonResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); nil != err {
		return indexNotFound, err
	}

	if r.Status != statusOK {
		return indexNotFound, errResponseStatus
	}

	var d responseData
	if err := json.Unmarshal(r.Data, &d); nil != err {
		return indexNotFound, err
	}

	// stations without a reading report "-"
	var index int
	if err := json.Unmarshal(d.Aqi, &index); nil != err {
		return indexNotFound, errNoReading
	}

	return index, nil
}

// New returns a client of the WAQI feed. An empty url uses the public
// endpoint and a nil client uses http.DefaultClient.
func New(token string, url string, client *http.Client) AQI {
	u := defaultURL
	if url != "" {
		u = url
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &aqi{
		token:  token,
		url:    u,
		client: client,
	}
}
