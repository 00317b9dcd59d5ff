package thermostat

import (
	"testing"

	"smart_thermostat/internal/action"
	"smart_thermostat/internal/models"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		act    action.Action
		want   string
		verify func(t *testing.T, st *models.ThermostatState)
	}{
		{
			name: "mode",
			act:  action.SetHvacMode{Mode: models.HvacCool},
			want: "Applied: HVAC mode → Cool",
			verify: func(t *testing.T, st *models.ThermostatState) {
				if st.HvacMode != models.HvacCool {
					t.Fatalf("mode = %s", st.HvacMode)
				}
			},
		},
		{
			name: "fan on",
			act:  action.SetFan{Fan: models.FanOn},
			want: "Applied: Fan → On",
			verify: func(t *testing.T, st *models.ThermostatState) {
				if !st.FanOn {
					t.Fatalf("fan not on")
				}
			},
		},
		{
			name: "comfort",
			act:  action.SetComfort{Comfort: "Sleep"},
			want: "Applied: Comfort → Sleep",
			verify: func(t *testing.T, st *models.ThermostatState) {
				if st.Comfort != "Sleep" {
					t.Fatalf("comfort = %s", st.Comfort)
				}
			},
		},
		{
			name: "unknown comfort",
			act:  action.SetComfort{Comfort: "Party"},
			want: StatusInvalidComfort,
			verify: func(t *testing.T, st *models.ThermostatState) {
				if st.Comfort != "Away" {
					t.Fatalf("comfort = %s", st.Comfort)
				}
			},
		},
		{
			name: "setpoint defaults to active comfort and clamps",
			act:  action.SetSetpoint{Target: models.TargetHeat, Value: 30},
			want: "Applied: Away heat setpoint → 45",
			verify: func(t *testing.T, st *models.ThermostatState) {
				if st.Setpoints["Away"].Heat != 45 {
					t.Fatalf("Away = %+v", st.Setpoints["Away"])
				}
			},
		},
		{
			name: "setpoint on explicit comfort",
			act:  action.SetSetpoint{Target: models.TargetCool, Value: 74, Comfort: "Home"},
			want: "Applied: Home cool setpoint → 74",
			verify: func(t *testing.T, st *models.ThermostatState) {
				if st.Setpoints["Home"].Cool != 74 || st.Comfort != "Away" {
					t.Fatalf("Home = %+v, comfort = %s", st.Setpoints["Home"], st.Comfort)
				}
			},
		},
		{
			name: "location",
			act:  action.SetLocation{Location: "Oakland"},
			want: "Applied: Location → Oakland",
			verify: func(t *testing.T, st *models.ThermostatState) {
				if st.Location != "Oakland" {
					t.Fatalf("location = %s", st.Location)
				}
			},
		},
		{
			name: "unknown with reason",
			act:  action.Unknown{Type: "set_fan", Reason: action.ReasonInvalidFan},
			want: action.ReasonInvalidFan,
		},
		{
			name: "unknown without reason",
			act:  action.Unknown{Type: "reboot"},
			want: StatusUnknownAction,
		},
		{
			name: "nil",
			act:  nil,
			want: StatusUnknownAction,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := models.NewThermostatState()
			if got := Apply(st, tc.act); got != tc.want {
				t.Fatalf("status = %q; want %q", got, tc.want)
			}
			if tc.verify != nil {
				tc.verify(t, st)
			}
		})
	}
}

func TestApply_SetpointSameDirectAndOverWire(t *testing.T) {
	cases := []action.SetSetpoint{
		{Target: models.TargetCool, Value: 3_000_000_000, Comfort: "Sleep"},
		{Target: models.TargetHeat, Value: -3_000_000_000},
		{Target: models.TargetCool, Value: 91},
		{Target: models.TargetHeat, Value: 44, Comfort: "Party"},
	}
	for _, a := range cases {
		block, err := action.Render(a)
		if err != nil {
			t.Fatalf("Render(%+v): %v", a, err)
		}
		decoded, _ := action.Parse("ok " + block)
		if !action.IsApplicable(decoded) {
			t.Fatalf("decoded %+v as %#v", a, decoded)
		}

		direct, wire := models.NewThermostatState(), models.NewThermostatState()
		gotDirect := Apply(direct, a)
		gotWire := Apply(wire, decoded)
		if gotDirect != gotWire {
			t.Fatalf("status direct=%q wire=%q", gotDirect, gotWire)
		}
		if direct.Setpoints[a.Comfort] != wire.Setpoints[a.Comfort] || direct.Setpoints["Away"] != wire.Setpoints["Away"] {
			t.Fatalf("state diverged for %+v", a)
		}
	}
}
