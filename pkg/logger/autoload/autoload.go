// Package autoload initializes the global logger from the environment via a
// blank import.
package autoload

import (
	configx "github.com/tanpawarit/guitar-shop-agents/pkg/config"
	logx "github.com/tanpawarit/guitar-shop-agents/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
