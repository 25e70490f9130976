package formatter

import (
	"fmt"
	"strings"

	"github.com/Janjiran/workoutkit/internal/domain"
)

// Summary renders a one-line description of a definition.
func Summary(def domain.Definition) string {
	switch def.Kind {
	case domain.PlanCustom:
		return fmt.Sprintf("custom %s (%s), %d block(s)",
			def.Custom.Activity, def.Custom.Location, len(def.Custom.Blocks))
	case domain.PlanSingleGoal:
		return fmt.Sprintf("%s (%s), goal %s",
			def.SingleGoal.Activity, def.SingleGoal.Location, FormatGoal(def.SingleGoal.Goal))
	case domain.PlanPacer:
		return fmt.Sprintf("%s (%s) pacer, %s",
			def.Pacer.Activity, def.Pacer.Location, FormatTarget(def.Pacer.Target))
	case domain.PlanMultisport:
		return fmt.Sprintf("multisport, %d leg(s)", len(def.Multisport.Activities))
	}
	return string(def.Kind)
}

// FormatDefinition renders a full, human-readable view of a definition.
func FormatDefinition(def domain.Definition) string {
	var b strings.Builder

	name := def.DisplayName()
	if name == "" {
		name = "workout"
	}
	b.WriteString(Header(name))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("kind: ") + StyleFg.Render(string(def.Kind)))
	b.WriteString("\n")

	switch def.Kind {
	case domain.PlanCustom:
		formatCustom(&b, def.Custom)
	case domain.PlanSingleGoal:
		b.WriteString(activityLine(def.SingleGoal.Activity, def.SingleGoal.Location))
		b.WriteString(StyleDim.Render("goal: ") + StyleFg.Render(FormatGoal(def.SingleGoal.Goal)) + "\n")
	case domain.PlanPacer:
		b.WriteString(activityLine(def.Pacer.Activity, def.Pacer.Location))
		b.WriteString(StyleDim.Render("target: ") + StyleFg.Render(FormatTarget(def.Pacer.Target)) + "\n")
	case domain.PlanMultisport:
		for i, leg := range def.Multisport.Activities {
			loc := string(leg.Location)
			if leg.Swimming != "" {
				loc = string(leg.Swimming)
			}
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				StyleDim.Render(fmt.Sprintf("leg %d:", i+1)),
				StyleBold.Render(string(leg.Activity)),
				StyleDim.Render("("+loc+")")))
		}
	}

	return b.String()
}

func formatCustom(b *strings.Builder, w *domain.CustomWorkout) {
	b.WriteString(activityLine(w.Activity, w.Location))
	if w.Warmup != nil {
		b.WriteString(StyleYellow.Render("warmup: ") + FormatStep(*w.Warmup) + "\n")
	}
	for i, block := range w.Blocks {
		label := fmt.Sprintf("block %d", i+1)
		if block.Iterations > 1 {
			label = fmt.Sprintf("block %d ×%d", i+1, block.Iterations)
		}
		b.WriteString(StyleBlue.Render(label) + "\n")
		for _, step := range block.Steps {
			marker := StyleGreen.Render("  work     ")
			if step.Purpose == domain.PurposeRecovery {
				marker = StyleDim.Render("  recovery ")
			}
			b.WriteString(marker + FormatStep(step.Step) + "\n")
		}
	}
	if w.Cooldown != nil {
		b.WriteString(StyleYellow.Render("cooldown: ") + FormatStep(*w.Cooldown) + "\n")
	}
}

func activityLine(activity domain.ActivityType, location domain.LocationType) string {
	return StyleDim.Render("activity: ") + StyleBold.Render(string(activity)) +
		StyleDim.Render(" ("+string(location)+")") + "\n"
}

// FormatStep renders a step's goal and optional alert.
func FormatStep(step domain.WorkoutStep) string {
	s := FormatGoal(step.Goal)
	if step.Alert != nil {
		s += StyleDim.Render(" · alert ") + FormatAlert(*step.Alert)
	}
	return s
}

// FormatGoal renders a goal using its declared unit.
func FormatGoal(g domain.Goal) string {
	switch g.Kind {
	case domain.GoalDistance:
		return fmt.Sprintf("%s %s", trimFloat(g.Value), g.DistanceUnit)
	case domain.GoalTime:
		return fmt.Sprintf("%s %s", trimFloat(g.Value), g.TimeUnit)
	case domain.GoalEnergy:
		return fmt.Sprintf("%s %s", trimFloat(g.Value), g.EnergyUnit)
	default:
		return "open"
	}
}

// FormatAlert renders an alert with its normalized units.
func FormatAlert(a domain.Alert) string {
	switch a.Kind {
	case domain.AlertHeartRateZone:
		return fmt.Sprintf("heart rate zone %d", a.Zone)
	case domain.AlertHeartRateRange:
		return fmt.Sprintf("heart rate %s–%s bpm", trimFloat(a.Min), trimFloat(a.Max))
	case domain.AlertPaceRange:
		return fmt.Sprintf("pace %.2f–%.2f m/s", a.Min, a.Max)
	case domain.AlertSpeedRange:
		return fmt.Sprintf("speed %.2f–%.2f m/s", a.Min, a.Max)
	case domain.AlertCadenceRange:
		return fmt.Sprintf("cadence %s–%s rpm", trimFloat(a.Min), trimFloat(a.Max))
	case domain.AlertPowerRange:
		return fmt.Sprintf("power %s–%s W", trimFloat(a.Min), trimFloat(a.Max))
	}
	return string(a.Kind)
}

// FormatTarget renders a pacer target as distance over duration.
func FormatTarget(t domain.PacerTarget) string {
	secs := int(t.DurationSeconds + 0.5)
	return fmt.Sprintf("%s m in %d:%02d", trimFloat(t.DistanceMeters), secs/60, secs%60)
}

// FormatSchedule renders date components, leaving unset parts out.
func FormatSchedule(at *domain.DateComponents) string {
	if at == nil {
		return "-"
	}
	s := fmt.Sprintf("%04d-%02d-%02d", at.Year, at.Month, at.Day)
	if at.Hour != 0 || at.Minute != 0 {
		s += fmt.Sprintf(" %02d:%02d", at.Hour, at.Minute)
	}
	return s
}

// PlanTable renders a table of stored plans.
func PlanTable(plans []*domain.Plan) string {
	headers := []string{"ID", "KIND", "ACTIVITY", "NAME", "SCHEDULED"}
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		id := p.ID
		if len(id) > 8 {
			id = id[:8]
		}
		activity := string(p.Definition.Activity())
		if activity == "" {
			activity = "-"
		}
		name := p.Definition.DisplayName()
		if name == "" {
			name = "-"
		}
		rows = append(rows, []string{
			StyleDim.Render(id),
			string(p.Definition.Kind),
			activity,
			name,
			FormatSchedule(p.ScheduledAt),
		})
	}
	return RenderTable(headers, rows)
}

// trimFloat renders a float without trailing zeros.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
