/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dtrack

import "sync"

// TokenSource supplies the bearer token. An empty token sends no Authorization header.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource that always returns the same token
type StaticToken string

func (s StaticToken) Token() string {
	return string(s)
}

// TokenFunc adapts a function to TokenSource
type TokenFunc func() string

func (f TokenFunc) Token() string {
	return f()
}

// SessionObserver is told about every 200 and every 401 response. Other
// statuses are not reported.
type SessionObserver interface {
	Authenticated()
	Unauthenticated()
}

// Observers fans each notification out in order
type Observers []SessionObserver

func (o Observers) Authenticated() {
	for _, obs := range o {
		if obs != nil {
			obs.Authenticated()
		}
	}
}

func (o Observers) Unauthenticated() {
	for _, obs := range o {
		if obs != nil {
			obs.Unauthenticated()
		}
	}
}

// Regions is the visibility of the console's page regions
type Regions struct {
	Navbar        bool
	Sidebar       bool
	Main          bool
	LoginPrompt   bool
	FocusRequests int // times focus was moved to the username field
}

// Layout tracks console region visibility as a SessionObserver. A 200 shows
// the navigation, sidebar and main regions and hides the login prompt. A 401
// hides them, shows the login prompt and moves focus to the username field.
type Layout struct {
	mu      sync.Mutex
	regions Regions
}

func NewLayout() *Layout {
	return &Layout{}
}

func (l *Layout) Authenticated() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.regions.Navbar = true
	l.regions.Sidebar = true
	l.regions.Main = true
	l.regions.LoginPrompt = false
}

func (l *Layout) Unauthenticated() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.regions.Navbar = false
	l.regions.Sidebar = false
	l.regions.Main = false
	l.regions.LoginPrompt = true
	l.regions.FocusRequests++
}

// Regions returns a copy of the current state
func (l *Layout) Regions() Regions {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.regions
}
