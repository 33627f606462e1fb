// Package grpc exposes the calculator over gRPC.
//
// Messages are the JSON models shared with the HTTP surface, carried by a
// codec registered under the "json" content subtype, so no generated protobuf
// code is involved. Credentials travel in request metadata.
package grpc
