// Package logger expone un logger Zap único para todo el proceso, con
// loggers "scoped" por request a través del contexto.
//
// Inicialización (una vez, en cmd/usergate):
//
//	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, ServiceName: "usergate"})
//	defer logger.Sync()
//
// En controllers/services:
//
//	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("Provision"))
//	log.Info("user provisioned", logger.UserID(id))
//
// El middleware de logging inyecta request_id, method y path en el logger
// del contexto; From(ctx) cae al singleton si no hay ninguno.
package logger
