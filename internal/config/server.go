package config

//
// server.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
)

// ListenConf configure one listening address.
type ListenConf struct {
	Address string
	// WebRoot is path prefix of all routes, without trailing slash; empty for "/".
	WebRoot      string
	TLSKey       string
	TLSCert      string
	CookieSecure bool
}

// Validate normalize address and web root and check tls settings.
func (c *ListenConf) Validate() error {
	c.Address = strings.TrimSpace(c.Address)
	if c.Address == "" {
		return aerr.ErrValidation.WithUserMsg("listen address can't be empty")
	}

	if c.WebRoot = strings.TrimRight(strings.TrimSpace(c.WebRoot), "/"); c.WebRoot != "" && c.WebRoot[0] != '/' {
		c.WebRoot = "/" + c.WebRoot
	}

	if (c.TLSKey == "") != (c.TLSCert == "") {
		return aerr.ErrValidation.WithUserMsg("both tls key and cert must be defined")
	}

	return nil
}

func (c *ListenConf) TLSEnabled() bool {
	return c.TLSKey != ""
}

// UseSecureCookie is true for https or when forced (i.e. behind tls-terminating proxy).
func (c *ListenConf) UseSecureCookie() bool {
	return c.TLSEnabled() || c.CookieSecure
}

//-------------------------------------------------------------

// ServerConf configure dashboard server and optional management endpoints.
type ServerConf struct {
	MainServer ListenConf
	// MgmtServer.Address empty disable health/metrics/debug endpoints; the same address
	// as main server mount them on main server.
	MgmtServer ListenConf

	DebugFlags    DebugFlags
	EnableMetrics bool
	// MgmtAccessList is comma separated list of addresses and networks allowed to
	// access management endpoints.
	MgmtAccessList string

	// RefreshInterval enable background reload of subscriptions list; 0 disable.
	RefreshInterval time.Duration

	mgmtAccessList AccessList
}

func (c *ServerConf) Validate() error {
	if err := c.MainServer.Validate(); err != nil {
		return fmt.Errorf("validate main server configuration failed: %w", err)
	}

	if c.MgmtServer.Address = strings.TrimSpace(c.MgmtServer.Address); c.MgmtServer.Address != "" {
		if err := c.MgmtServer.Validate(); err != nil {
			return fmt.Errorf("validate mgmt server configuration failed: %w", err)
		}
	}

	if c.RefreshInterval < 0 {
		return aerr.ErrValidation.WithUserMsg("refresh interval can't be negative")
	}

	al, err := ParseAccessList(c.MgmtAccessList)
	if err != nil {
		return fmt.Errorf("validate mgmt access list failed: %w", err)
	}

	c.mgmtAccessList = al

	if len(al) > 0 {
		log.Logger.Debug().Strs("mgmt_access_list", al.Strings()).Msg("mgmt access list configured")
	}

	return nil
}

func (c *ServerConf) SeparateMgmtEnabled() bool {
	return c.MgmtServer.Address != "" && c.MgmtServer.Address != c.MainServer.Address
}

func (c *ServerConf) MgmtEnabledOnMainServer() bool {
	return c.MgmtServer.Address != "" && c.MgmtServer.Address == c.MainServer.Address
}

// AuthMgmtRequest check is request allowed to access management endpoints.
// Return:
//   - bool - is access allowed
//   - bool - is access to sensitive data (service health details, traces) allowed.
//
// Loopback is always allowed. When access list is configured only listed addresses
// are allowed; otherwise private networks get access without sensitive data.
func (c *ServerConf) AuthMgmtRequest(req *http.Request) (bool, bool) {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		host = req.RemoteAddr
	}

	if host == "localhost" {
		return true, true
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false, false
	}

	addr = addr.Unmap()

	switch {
	case addr.IsLoopback():
		return true, true
	case len(c.mgmtAccessList) > 0:
		return c.mgmtAccessList.Contains(addr), true
	default:
		return addr.IsPrivate(), false
	}
}
