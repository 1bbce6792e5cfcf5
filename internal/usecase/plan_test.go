package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightgroup-service/internal/domain/entity"
)

func recordWithPayload(id int64, departure time.Time, number string, payload map[string]interface{}) entity.FlightRecord {
	return entity.FlightRecord{
		SourceRowID: id,
		Slots:       []entity.FlightSlot{{FlightNumber: number, Departure: departure}},
		Payload:     payload,
	}
}

func TestBuildPlanSingletonPassthrough(t *testing.T) {
	groups := []entity.FlightGroup{
		{Members: []entity.FlightRecord{rec(1, day1)}},
		{Members: []entity.FlightRecord{rec(2, day1.Add(48 * time.Hour))}},
	}

	plan := BuildPlan(groups, 7)
	assert.True(t, plan.Empty())
}

func TestBuildPlanMergedGroup(t *testing.T) {
	anchorPayload := map[string]interface{}{
		"pax_name":    "GODER/FARJANA",
		"booking_ref": "31947988",
	}
	groups := []entity.FlightGroup{{Members: []entity.FlightRecord{
		recordWithPayload(1, day1.Add(8*time.Hour), "TK100", anchorPayload),
		recordWithPayload(2, day1.Add(14*time.Hour), "TK200", map[string]interface{}{"pax_name": "OTHER"}),
		recordWithPayload(3, day1.Add(20*time.Hour), "TK300", nil),
	}}}

	plan := BuildPlan(groups, 7)
	require.Len(t, plan.Inserts, 1)
	require.Len(t, plan.Updates, 3)

	ins := plan.Inserts[0]
	assert.NotEmpty(t, ins.LinkKey)
	assert.Equal(t, entity.MarkerInserted, ins.Columns["e_ticket_no"])

	// Non-flight columns come from the anchor member.
	assert.Equal(t, "GODER/FARJANA", ins.Columns["pax_name"])

	// Slots laid out in ascending departure order, tail nulled.
	assert.Equal(t, "TK100", ins.Columns["flight_number1"])
	assert.Equal(t, "TK200", ins.Columns["flight_number2"])
	assert.Equal(t, "TK300", ins.Columns["flight_number3"])
	for i := 4; i <= 7; i++ {
		require.Contains(t, ins.Columns, entity.FlightNumberColumn(i))
		assert.Nil(t, ins.Columns[entity.FlightNumberColumn(i)])
		assert.Nil(t, ins.Columns[entity.DepartureDateColumn(i)])
	}

	// One update per absorbed member, ascending time order, all linked to
	// the same insert.
	wantIDs := []int64{1, 2, 3}
	for i, upd := range plan.Updates {
		assert.Equal(t, wantIDs[i], upd.SourceRowID)
		assert.Equal(t, ins.LinkKey, upd.LinkKey)
		assert.Equal(t, entity.MarkerSuperseded, upd.Marker)
	}
}

func TestBuildPlanMultiSlotMembers(t *testing.T) {
	consolidated := entity.FlightRecord{
		SourceRowID: 1,
		Slots: []entity.FlightSlot{
			{FlightNumber: "TK1", Departure: day1},
			{FlightNumber: "TK2", Departure: day1.Add(2 * time.Hour)},
		},
	}
	groups := []entity.FlightGroup{{Members: []entity.FlightRecord{
		consolidated,
		rec(2, day1.Add(5*time.Hour)),
	}}}

	plan := BuildPlan(groups, 7)
	require.Len(t, plan.Inserts, 1)

	ins := plan.Inserts[0]
	assert.Equal(t, "TK1", ins.Columns["flight_number1"])
	assert.Equal(t, "TK2", ins.Columns["flight_number2"])
	assert.Equal(t, "TK100", ins.Columns["flight_number3"])
	assert.Len(t, plan.Updates, 2)
}

func TestBuildPlanPreservesGroupOrder(t *testing.T) {
	groups := []entity.FlightGroup{
		{Members: []entity.FlightRecord{rec(1, day1), rec(2, day1.Add(time.Hour))}},
		{Members: []entity.FlightRecord{rec(3, day1.Add(48 * time.Hour))}},
		{Members: []entity.FlightRecord{rec(4, day1.Add(90 * time.Hour)), rec(5, day1.Add(91 * time.Hour))}},
	}

	plan := BuildPlan(groups, 7)
	require.Len(t, plan.Inserts, 2)
	require.Len(t, plan.Updates, 4)

	assert.NotEqual(t, plan.Inserts[0].LinkKey, plan.Inserts[1].LinkKey)
	assert.Equal(t, plan.Inserts[0].LinkKey, plan.Updates[0].LinkKey)
	assert.Equal(t, plan.Inserts[0].LinkKey, plan.Updates[1].LinkKey)
	assert.Equal(t, plan.Inserts[1].LinkKey, plan.Updates[2].LinkKey)
	assert.Equal(t, plan.Inserts[1].LinkKey, plan.Updates[3].LinkKey)

	gotIDs := make([]int64, len(plan.Updates))
	for i, upd := range plan.Updates {
		gotIDs[i] = upd.SourceRowID
	}
	assert.Equal(t, []int64{1, 2, 4, 5}, gotIDs)
}

func TestBuildPlanEmptyGroups(t *testing.T) {
	plan := BuildPlan(nil, 7)
	assert.True(t, plan.Empty())
}
