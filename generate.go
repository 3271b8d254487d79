// Package hdelivery provides go:generate directives for code generation.
//
// Run "go generate ./..." from the project root to regenerate the gRPC
// bindings under api/hstream/v1.
//
// Prerequisites:
//   - protoc: https://grpc.io/docs/protoc-installation/
//   - protoc-gen-go: go install google.golang.org/protobuf/cmd/protoc-gen-go@latest
//   - protoc-gen-go-grpc: go install google.golang.org/grpc/cmd/protoc-gen-go-grpc@latest
//
//go:generate protoc --proto_path=api --go_out=paths=source_relative:api --go-grpc_out=paths=source_relative:api api/hstream/v1/hstream.proto
package hdelivery
