// Package discovery finds LAN-attached instruments over mDNS.
//
// LXI-class instruments (Rigol scopes among them) announce their raw
// SCPI socket as _scpi-raw._tcp and their LXI presence as _lxi._tcp.
// Browse watches both service types and aggregates announcements by
// instance name; the resulting addresses feed straight into
// transport.OpenTCP.
package discovery
