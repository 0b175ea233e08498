package service

import "errors"

var (
	// ErrNavigatorNotSet is logged when a redirect is due but no navigator
	// was attached.
	ErrNavigatorNotSet = errors.New("navigator not set")
)
