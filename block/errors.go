package block

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID          = errors.New("duplicate block id")
	ErrForeignBlock         = errors.New("block does not belong to this workspace")
	ErrNoSuchSlot           = errors.New("no such slot")
	ErrNoSuchField          = errors.New("no such field")
	ErrSlotOccupied         = errors.New("slot already holds a block")
	ErrIncompatible         = errors.New("incompatible connection")
	ErrNoNextConnection     = errors.New("block has no next connection")
	ErrNoPreviousConnection = errors.New("block has no previous connection")
	ErrNextConnected        = errors.New("next connection still holds a block")
	ErrCycle                = errors.New("connection would create a cycle")
)

func connectError(err error, parent, child *Block) error {
	return fmt.Errorf("connect %v to %v: %w", child, parent, err)
}

func slotError(err error, parent *Block, slot string, child *Block) error {
	return fmt.Errorf("connect %v to %v.%s: %w", child, parent, slot, err)
}

func fieldError(b *Block, name string) error {
	return fmt.Errorf("%v field %q: %w", b, name, ErrNoSuchField)
}
