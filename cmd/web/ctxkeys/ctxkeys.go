package ctxkeys

// EchoVisitorID is the echo.Context key holding the visitor ID issued by the
// visitor middleware.
const EchoVisitorID = "visitorID"
