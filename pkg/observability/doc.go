/*
Package observability counts what the catalog creates.

Metrics are kept on a private Prometheus registry so that embedding the
engine in another program never collides with that program's collectors.
The HTTP adapter mounts Handler at /metrics.
*/
package observability
