// Package log provides the zap backed logging used by this module.
//
// Library code here never logs on its own. It reports through a Wrapper
// supplied by the caller, usually ZapWrapper, which logs through the logger
// attached to the request's context:
//
//	ctx = log.Attach(ctx, log.AttachArgs{TraceID: sc.TraceID().Hex()})
//	log.C(ctx).Warnw("Something is off", "header", value)
//
// The global logger is a nop until InitLogger is called.
package log
