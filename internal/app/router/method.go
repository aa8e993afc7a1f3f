package router

import (
	"fmt"
)

// Method selects how the audio file is presented to the inference endpoint.
type Method string

const (
	// MethodAuto resolves to inline or upload from the file size.
	MethodAuto Method = "auto"
	// MethodInline embeds the raw bytes directly in the generation request.
	MethodInline Method = "inline"
	// MethodUpload obtains a remote handle first, then references it.
	MethodUpload Method = "upload"
)

// ParseMethod maps a user-supplied string onto a Method.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodAuto, MethodInline, MethodUpload:
		return Method(s), nil
	default:
		return "", fmt.Errorf("unknown processing method %q (expected auto, inline or upload)", s)
	}
}

// ResolveMethod turns a requested method into a concrete one. Auto picks
// inline below the threshold and upload at or above it. An explicit inline
// or upload choice is returned unchanged even when suboptimal for the size.
func (r *Router) ResolveMethod(sizeBytes int64, requested Method) Method {
	if requested != MethodAuto {
		return requested
	}
	if sizeBytes < r.cfg.InlineThreshold {
		return MethodInline
	}
	return MethodUpload
}
