package service

import (
	"strconv"
	"strings"
	"time"

	"mypresence/domain"
)

// NewInstance derives the identity of this process: prefix + host + ":" + start time in unix millis.
// The host is kept separately so that peers can recognise a restart on the same machine.
func NewInstance(prefix, host string, start time.Time) domain.Instance {
	host = strings.TrimSpace(host)
	return domain.Instance{
		Name: prefix + host + ":" + strconv.FormatInt(start.UnixMilli(), 10),
		Host: host,
	}
}
