// Package mocks holds the gomock implementations of the interfaces consumed by
// the wasm mock querier. They are generated by `go generate ./...` and, unlike
// the rest of the generated mocks, committed so the querier tests build
// without a generation step.
package mocks

import (
	// Fix for: cannot find module providing package go.uber.org/mock/mockgen/model: import lookup disabled by -mod=vendor
	// More info: https://github.com/uber-go/mock/issues/83#issuecomment-1931054917
	_ "go.uber.org/mock/mockgen/model"
)
