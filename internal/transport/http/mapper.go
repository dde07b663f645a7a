package http

import (
	"github.com/tilerace/tilerace-server/internal/game"
	"github.com/tilerace/tilerace-server/internal/proto"
)

func candidateFromProto(p proto.PlayerCandidate) game.Candidate {
	return game.Candidate{
		ID:     p.ID,
		Name:   p.Name,
		Color:  p.Color,
		Ready:  p.Ready,
		Tile:   p.Tile,
		IsHost: p.IsHost,
	}
}

func outboundFromEvent(event *game.Event) proto.Outbound {
	switch event.Kind {
	case game.EventSnapshot:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventRoomsUpdate,
			Data:  event.Snapshot,
		}
	case game.EventPlayerJoined:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventPlayerJoined,
			Data:  noticeFromEvent(event),
		}
	case game.EventPlayerLeft:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventPlayerLeft,
			Data:  noticeFromEvent(event),
		}
	case game.EventDiceRolled:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventDiceRolled,
			Data:  noticeFromEvent(event),
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}

func noticeFromEvent(event *game.Event) proto.NoticeData {
	return proto.NoticeData{
		PlayerName: event.Notice.PlayerName,
		RoomCode:   event.Notice.RoomCode,
		Roll:       event.Notice.Roll,
		Tile:       event.Notice.Tile,
	}
}

func protoError(err error) *proto.Error {
	return &proto.Error{Code: game.ErrCode(err), Msg: err.Error()}
}
