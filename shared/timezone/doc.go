// Package timezone pins the timestamps the service stamps itself (created and
// modified metadata, paid_at, token expiry) to the rental office's zone,
// APP_TIMEZONE, an IANA name such as "Europe/Zurich". Set the postgres
// session TIMEZONE to the same zone so loaded rows agree with it.
package timezone
