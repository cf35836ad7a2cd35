// Package events defines the typed stream event contract.
//
// A streaming search response is a sequence of these events, in arrival
// order:
//
//   - Meta (meta): intent classification, response tier, retrieved sources
//     and recommendations. Sent once, before any answer text.
//   - Chunk (chunk): append-only answer text segment emitted in stream
//     order.
//   - Done (done): terminal marker; carries the server's insufficiency
//     flag.
//   - Error (error): terminal failure; carries a human-readable message.
//
// Done and Error are terminal: no further events follow either of them.
package events
