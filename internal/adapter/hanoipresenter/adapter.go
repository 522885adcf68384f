package hanoipresenter

import (
	"github.com/park285/hanoi-towers/internal/domain"
	"github.com/park285/hanoi-towers/internal/game"
	"github.com/park285/hanoi-towers/pkg/hanoidto"
)

func ToDTOPegs(s domain.Snapshot) []hanoidto.PegState {
	out := make([]hanoidto.PegState, 0, len(s))
	for _, p := range s {
		disks := append([]int{}, p.Disks...)
		out = append(out, hanoidto.PegState{Name: p.Name, Disks: disks})
	}
	return out
}

func ToDTOStart(sess *game.Session) *hanoidto.Start {
	if sess == nil {
		return nil
	}
	return &hanoidto.Start{
		Type:      hanoidto.TypeStart,
		SessionID: sess.ID,
		Disks:     sess.DiskCount,
		Pegs:      ToDTOPegs(sess.Start()),
	}
}

func ToDTOMove(ev domain.MoveEvent) *hanoidto.Move {
	return &hanoidto.Move{
		Type: hanoidto.TypeMove,
		Step: ev.Step,
		Disk: ev.Disk,
		From: ev.From,
		To:   ev.To,
		Pegs: ToDTOPegs(ev.Snapshot),
	}
}

func ToDTOSummary(res *game.Result) *hanoidto.Summary {
	if res == nil {
		return nil
	}
	return &hanoidto.Summary{
		Type:       hanoidto.TypeSummary,
		SessionID:  res.SessionID,
		Disks:      res.DiskCount,
		TotalMoves: res.Moves,
		Final:      ToDTOPegs(res.Final),
		DurationMS: res.Duration.Milliseconds(),
	}
}
