package database

import "testing"

func TestParseChange(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Change
		wantErr bool
	}{
		{
			name:    "valid payload",
			payload: `{"table": "alerts", "user_id": "3c6f4a1e-0000-0000-0000-000000000001", "op": "UPDATE"}`,
			want:    Change{Table: "alerts", UserID: "3c6f4a1e-0000-0000-0000-000000000001", Op: "UPDATE"},
		},
		{
			name:    "malformed json",
			payload: `{"table": `,
			wantErr: true,
		},
		{
			name:    "empty payload",
			payload: ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseChange(tt.payload)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseChange() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseChange() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWatcherSubscribe(t *testing.T) {
	w := &Watcher{subs: make(map[int]chan Change)}

	ch1, cancel1 := w.Subscribe()
	ch2, cancel2 := w.Subscribe()
	defer cancel2()

	change := Change{Table: "policies", UserID: "u1", Op: "INSERT"}
	w.dispatch(change)

	for i, ch := range []<-chan Change{ch1, ch2} {
		select {
		case got := <-ch:
			if got != change {
				t.Errorf("subscriber %d received %+v, want %+v", i, got, change)
			}
		default:
			t.Fatalf("subscriber %d received nothing", i)
		}
	}

	// After cancel the subscriber's channel is closed and no longer
	// receives dispatches.
	cancel1()
	if _, open := <-ch1; open {
		t.Error("cancelled subscriber channel still open")
	}

	w.dispatch(change)
	select {
	case got := <-ch2:
		if got != change {
			t.Errorf("remaining subscriber received %+v, want %+v", got, change)
		}
	default:
		t.Fatal("remaining subscriber received nothing after cancel of another")
	}

	// Cancelling twice is a no-op.
	cancel1()
}
