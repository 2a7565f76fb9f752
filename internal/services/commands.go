package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tupyy/areomh-controller/internal/models"
)

// nextCommand takes one command from the operator queue, or from the
// communications link when the queue is empty.
func (c *Controller) nextCommand(ctx context.Context) (models.Command, bool) {
	if len(c.commands) > 0 {
		cmd := c.commands[0]
		c.commands = c.commands[1:]
		return cmd, true
	}

	raw, ok, err := c.p.comms.ReceiveCommand(ctx)
	if err != nil {
		c.fault(ctx, models.ComponentComms, err)
		return "", false
	}
	if !ok {
		return "", false
	}

	cmd, err := models.ParseCommand(raw)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCommand) {
			zap.S().Named("commands").Warnw("ignoring unrecognized command", "command", raw)
		}
		return "", false
	}
	return cmd, true
}

// execute runs cmd, remembers where to resume and enters AwaitingCommand.
func (c *Controller) execute(ctx context.Context, cmd models.Command) {
	resume := c.state
	if c.state == models.MissionStateAwaitingCommand {
		resume = c.previous
	}

	zap.S().Named("commands").Infow("executing command", "command", cmd, "state", c.state)

	switch cmd {
	case models.CommandRecalibrateIMU:
		if err := c.p.sensing.Calibrate(ctx); err != nil {
			c.fault(ctx, models.ComponentIMU, err)
		}
	case models.CommandRetrieveAbort:
		resume = models.MissionStateReturning
		if c.attached {
			if err := c.p.actuation.Detach(ctx); err != nil {
				c.fault(ctx, models.ComponentArm, err)
				resume = models.MissionStateRepairing
			} else {
				c.attached = false
			}
		}
		c.clearSiteContext()
	case models.CommandOptimizeDrillRPM:
		c.wearRate /= 2
	case models.CommandReportStatus:
		c.sendTelemetry(ctx)
	}

	c.previous = resume
	c.transition(ctx, models.MissionStateAwaitingCommand, "command "+string(cmd))
}
