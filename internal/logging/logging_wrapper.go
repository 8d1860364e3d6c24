package logging

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// LoggingWrapper gives every request its own LogData, tags it with a request
// id and writes one summary line when the handler returns.
func LoggingWrapper(loggingName string, log *logrus.Logger, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)

		requestID := req.Header.Get(RequestIDHeader)
		if requestID == "" {
			if id, err := uuid.NewV4(); err == nil {
				requestID = id.String()
			}
		}
		w.Header().Set(RequestIDHeader, requestID)

		logData.AddData("requestID", requestID)
		logData.AddData("method", req.Method)
		logData.AddData("path", req.URL.Path)

		log.WithField("requestID", requestID).Debugf("Handler.%v.Start", loggingName)

		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		endTimer := logData.AddTiming("durationMs")
		handler.ServeHTTP(rw, req.WithContext(WithLogData(req.Context(), logData)))
		endTimer()

		logData.AddData("status", rw.status)
		if rw.status >= http.StatusInternalServerError {
			logData.Log().Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	})
}

// OperationMiddleware records the huma operation id on the request LogData.
func OperationMiddleware(ctx huma.Context, next func(huma.Context)) {
	if logData := GetLogData(ctx.Context()); logData != nil && ctx.Operation() != nil {
		logData.AddData("operation", ctx.Operation().OperationID)
	}
	next(ctx)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
