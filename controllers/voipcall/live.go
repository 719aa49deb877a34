package voipcall

import (
	"net/http"
	"time"

	"dialeradmin/reports"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// declare upgrader, same origin only
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// LiveData - one push of the live summary
type LiveData struct {
	At      time.Time            `json:"at"`
	Daily   []reports.DailyTotal `json:"daily"`
	Summary reports.Summary      `json:"summary"`
	Error   string               `json:"error,omitempty"`
}

// Live - websocket pushing today's summary every Interval
func (ctl *Controller) Live(c *gin.Context) {

	// 1. instantiate ws conn
	socket, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		ctl.Logger.Errorf("[WEBSOCKET] cannot establish websocket connection. %v", err)
		return
	}
	defer socket.Close()

	// 2. client messages are ignored, reading only notices the close
	closed := make(chan struct{})

	go func() {
		defer close(closed)
		for {
			if _, _, err := socket.ReadMessage(); err != nil {
				return
			}
		}
	}()

	interval := ctl.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// 3. sending data to client
	for {

		if err := socket.WriteJSON(ctl.live()); err != nil {
			ctl.Logger.Debugf("[WEBSOCKET] client gone : %v", err)
			return
		}

		select {
		case <-closed:
			return
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

func (ctl *Controller) live() LiveData {

	now := ctl.Service.Now()

	daily, summary, err := ctl.Service.Totals(ctl.Service.Today())
	if err != nil {
		ctl.Logger.Errorf("[WEBSOCKET] cannot compute live summary. %v", err)
		return LiveData{At: now, Error: http.StatusText(http.StatusInternalServerError)}
	}

	return LiveData{At: now, Daily: daily, Summary: summary}
}
