package config

//
// accesslist.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/netip"
	"strings"

	"gitlab.com/kabes/go-ytdash/internal/aerr"
)

// AccessList is list of allowed networks; single address is stored as full-length prefix.
type AccessList []netip.Prefix

// ParseAccessList parse comma separated addresses and networks (CIDR). Empty entries are skipped.
func ParseAccessList(value string) (AccessList, error) {
	var al AccessList

	for entry := range strings.SplitSeq(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, aerr.ErrValidation.WithUserMsg("invalid entry in access list: entry=%q error=%q", entry, err)
			}

			al = append(al, prefix.Masked())

			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, aerr.ErrValidation.WithUserMsg("invalid entry in access list: entry=%q", entry)
		}

		addr = addr.Unmap()
		al = append(al, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return al, nil
}

func (a AccessList) Contains(addr netip.Addr) bool {
	addr = addr.Unmap()

	for _, p := range a {
		if p.Contains(addr) {
			return true
		}
	}

	return false
}

func (a AccessList) Strings() []string {
	res := make([]string, 0, len(a))
	for _, p := range a {
		res = append(res, p.String())
	}

	return res
}
