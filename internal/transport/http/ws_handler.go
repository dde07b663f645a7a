package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	stdhttp "net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tilerace/tilerace-server/internal/game"
	"github.com/tilerace/tilerace-server/internal/proto"
)

// WSHandler upgrades HTTP connections and bridges them to the session
// coordinator: inbound requests become coordinator operations acked on
// the same connection, and coordinator broadcasts stream back out.
type WSHandler struct {
	coord *game.Coordinator
	log   *zerolog.Logger
}

// wsSession is per-connection bookkeeping. Losing the connection never
// removes the player from its room; the session only remembers enough
// to emit a best-effort player:left notice on disconnect.
type wsSession struct {
	playerName string
	roomCode   string
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(coord *game.Coordinator, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{coord: coord, log: logger}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	sub := game.NewSubscriber(uuid.NewString())
	h.coord.Subscribe(sub)
	defer h.coord.Unsubscribe(sub)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session := &wsSession{}

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, session)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, sub)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	h.announceDrop(session)

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Str("subscriber", sub.ID).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

// announceDrop emits the best-effort player:left notice after a
// connection loss. The player record itself stays in the room so the
// client can rejoin with the same id.
func (h *WSHandler) announceDrop(session *wsSession) {
	if session.roomCode == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := h.coord.NotifyLeft(ctx, session.roomCode, session.playerName); err != nil {
		h.log.Debug().Err(err).Str("room", session.roomCode).Msg("drop notice not delivered")
	}
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, session *wsSession) error {
	for {
		var inbound proto.Inbound
		if err := wsjson.Read(ctx, conn, &inbound); err != nil {
			return err
		}

		if err := h.handleInbound(ctx, conn, session, inbound); err != nil {
			return err
		}
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, sub *game.Subscriber) error {
	for {
		select {
		case event, ok := <-sub.Events:
			if !ok {
				return nil
			}
			if err := wsjson.Write(ctx, conn, outboundFromEvent(event)); err != nil {
				h.log.Error().Err(err).Str("subscriber", sub.ID).Msg("write ws event")
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// handleInbound runs one request against the coordinator and writes
// the ack. Every request resolves to exactly one of error or result.
func (h *WSHandler) handleInbound(ctx context.Context, conn *websocket.Conn, session *wsSession, inbound proto.Inbound) error {
	switch inbound.Type {
	case proto.InboundTypeList:
		snapshot, err := h.coord.Snapshot(ctx)
		if err != nil {
			return h.writeError(ctx, conn, inbound.ID, err)
		}
		return wsjson.Write(ctx, conn, proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventRoomsUpdate,
			Data:  snapshot,
		})

	case proto.InboundTypeCreate:
		var data proto.CreateData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return h.writeError(ctx, conn, inbound.ID, err)
		}
		room, err := h.coord.CreateRoom(ctx, candidateFromProto(data.Host))
		if err != nil {
			return h.writeError(ctx, conn, inbound.ID, err)
		}
		session.roomCode = room.Code
		session.playerName = room.Players[0].Name
		return h.writeAck(ctx, conn, inbound.ID, room)

	case proto.InboundTypeJoin:
		var data proto.JoinData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return h.writeError(ctx, conn, inbound.ID, err)
		}
		room, err := h.coord.JoinRoom(ctx, data.Code, candidateFromProto(data.Player))
		if err != nil {
			return h.writeError(ctx, conn, inbound.ID, err)
		}
		session.roomCode = room.Code
		session.playerName = game.SanitizePlayer(candidateFromProto(data.Player)).Name
		return h.writeAck(ctx, conn, inbound.ID, room)

	case proto.InboundTypeLeave:
		var data proto.LeaveData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return h.writeError(ctx, conn, inbound.ID, err)
		}
		if err := h.coord.LeaveRoom(ctx, data.Code, data.PlayerID); err != nil {
			return h.writeError(ctx, conn, inbound.ID, err)
		}
		if session.roomCode == data.Code {
			session.roomCode = ""
			session.playerName = ""
		}
		return h.writeAck(ctx, conn, inbound.ID, proto.OKData{OK: true})

	case proto.InboundTypeUpdatePlayer:
		var data proto.JoinData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return h.writeError(ctx, conn, inbound.ID, err)
		}
		room, err := h.coord.UpdatePlayer(ctx, data.Code, candidateFromProto(data.Player))
		if err != nil {
			return h.writeError(ctx, conn, inbound.ID, err)
		}
		return h.writeAck(ctx, conn, inbound.ID, room)

	case proto.InboundTypeStart:
		var data proto.RoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return h.writeError(ctx, conn, inbound.ID, err)
		}
		room, err := h.coord.StartGame(ctx, data.Code)
		if err != nil {
			return h.writeError(ctx, conn, inbound.ID, err)
		}
		return h.writeAck(ctx, conn, inbound.ID, room)

	case proto.InboundTypeRoll:
		var data proto.RoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return h.writeError(ctx, conn, inbound.ID, err)
		}
		room, err := h.coord.RollDice(ctx, data.Code, data.PlayerID)
		if err != nil {
			return h.writeError(ctx, conn, inbound.ID, err)
		}
		return h.writeAck(ctx, conn, inbound.ID, room)

	default:
		return wsjson.Write(ctx, conn, proto.Outbound{
			ID:    inbound.ID,
			Type:  proto.OutboundTypeAck,
			Error: &proto.Error{Code: game.ErrCodeBadRequest, Msg: "unknown message type"},
		})
	}
}

func (h *WSHandler) writeAck(ctx context.Context, conn *websocket.Conn, id int64, data any) error {
	return wsjson.Write(ctx, conn, proto.Outbound{
		ID:   id,
		Type: proto.OutboundTypeAck,
		Data: data,
	})
}

func (h *WSHandler) writeError(ctx context.Context, conn *websocket.Conn, id int64, err error) error {
	// Context failures mean the connection is going away; everything
	// else is a per-request error acked back to the caller.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return wsjson.Write(ctx, conn, proto.Outbound{
		ID:    id,
		Type:  proto.OutboundTypeAck,
		Error: protoError(err),
	})
}
