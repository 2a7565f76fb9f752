package v1

import (
	"github.com/tupyy/areomh-controller/internal/models"
)

func vectorFromModel(v models.Vector3D) Vector {
	return Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector) ToModel() models.Vector3D {
	return models.Vector3D{X: v.X, Y: v.Y, Z: v.Z}
}

func targetFromModel(t models.TargetBody) Target {
	return Target{
		Position:        vectorFromModel(t.Position),
		Mass:            t.Mass,
		AngularVelocity: vectorFromModel(t.AngularVelocity),
	}
}

func (s *MissionStatus) FromModel(m models.MissionStatus) {
	s.MissionId = m.MissionID
	s.Cycle = m.Cycle
	s.State = string(m.State)
	s.Position = vectorFromModel(m.Navigation.Position)
	s.Velocity = vectorFromModel(m.Navigation.Velocity)
	s.Target = targetFromModel(m.Target)
	s.Resources = Resources{
		ChargePercent:      m.Resources.ChargePercent,
		CurrentDrawWatts:   m.Resources.CurrentDrawWatts,
		TemperatureCelsius: m.Resources.TemperatureCelsius,
		CapacityWatts:      m.Resources.CapacityWatts,
	}
	s.Cargo = Cargo{
		Kind:     string(m.Cargo.Kind),
		Quantity: m.Cargo.Quantity,
		Capacity: m.Cargo.Capacity,
		Refined:  m.Cargo.Refined,
		Value:    m.Cargo.Value,
	}
	s.DrillWear = float64(m.DrillWear)
	s.Attached = m.Attached
	s.LastError = string(m.LastError)
	s.Healthy = m.Healthy
}

func (r *Mission) FromModel(m models.Mission) {
	r.Id = m.ID
	r.Status = string(m.Status)
	r.Target = targetFromModel(m.Target)
	r.Delivered = m.Delivered
	r.Value = m.Value
	r.StartedAt = m.StartedAt
	r.CompletedAt = m.CompletedAt
}

func (h *Health) FromModel(m models.HealthStatus) {
	h.Healthy = m.Healthy
	h.PrimaryError = string(m.PrimaryError)
	h.Components = make([]ComponentHealth, 0, len(m.Components))
	for _, c := range m.Components {
		h.Components = append(h.Components, ComponentHealth{
			Id:     c.ID,
			Error:  string(c.Error),
			Metric: c.Metric,
		})
	}
}

func (l *TransitionList) FromModel(events []models.TransitionEvent) {
	l.Transitions = make([]Transition, 0, len(events))
	for _, e := range events {
		l.Transitions = append(l.Transitions, Transition{
			MissionId: e.MissionID,
			Cycle:     e.Cycle,
			From:      string(e.From),
			To:        string(e.To),
			Reason:    e.Reason,
			At:        e.At,
		})
	}
}
