package ecs

import "errors"

var (
	ErrEmptyStack            = errors.New("ecs: attempted to pop the last world state")
	ErrNoWorldState          = errors.New("ecs: could not find world state")
	ErrUnregisteredComponent = errors.New("ecs: component type not registered")
	ErrEntityLimit           = errors.New("ecs: exceeded maximum entity limit")
	ErrStoreBusy             = errors.New("ecs: component store modified during iteration")
)
