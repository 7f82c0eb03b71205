package handler

import (
	"net/http"
	"time"

	"ContactBook/pkg/util/myjwt"
	"ContactBook/pkg/ws"
	"ContactBook/pkg/zlog"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WsHandler 推送通讯录变更事件，只下行
type WsHandler struct {
	hub    *ws.Hub
	signer *myjwt.Signer
}

// NewWsHandler signer 为 nil 时不校验 token
func NewWsHandler(hub *ws.Hub, signer *myjwt.Signer) *WsHandler {
	return &WsHandler{hub: hub, signer: signer}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *WsHandler) Connect(c *gin.Context) {
	clientID := c.Query("client_id")
	if clientID == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	// 浏览器 WebSocket 不能带自定义 Header，token 放在 query 里
	if h.signer != nil {
		claims, err := h.signer.ParseToken(c.Query("token"))
		if err != nil || claims.Uuid != clientID {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Error("ws upgrade failed", zap.Error(err))
		return
	}

	client := ws.NewClient(clientID, conn)
	h.hub.Register(client)
	defer h.hub.Unregister(client)
	zlog.Info("ws client connected", zap.String("client_id", clientID))

	conn.SetReadLimit(1 << 10)
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	go client.WritePump()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
