package agg

import "github.com/huangsam/pdpboard/schema"

// badgeStages lists the stages that get a "Completed" badge, in display order.
var badgeStages = []struct {
	label string
	stage string
}{
	{"CAD Design Completed", schema.StageCADDesign},
	{"CAD Production Completed", schema.StageCADProduction},
	{"PCB Design Completed", schema.StagePCBDesign},
	{"Mechanical Assembling Completed", schema.StageMechanical},
	{"MVP Achieved", schema.StageMVP},
}

// CountStatus returns how many projects have the given status on a stage.
// A stage the table does not carry counts zero.
func CountStatus(table schema.Table, stage, status string) int {
	return Lookup(Distribution(table, stage), status)
}

// Badges builds the headline summary row: total projects followed by the
// Done counts of the milestone stages.
func Badges(table schema.Table) []schema.Badge {
	badges := make([]schema.Badge, 0, len(badgeStages)+1)
	badges = append(badges, schema.Badge{Label: "Total Projects", Value: table.Len()})
	for _, b := range badgeStages {
		badges = append(badges, schema.Badge{
			Label: b.label,
			Value: CountStatus(table, b.stage, schema.StatusDone),
		})
	}
	return badges
}
