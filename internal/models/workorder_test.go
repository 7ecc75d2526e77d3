package models

import "testing"

func TestWorkOrder_IsPPM(t *testing.T) {
	tests := []struct {
		name     string
		woType   string
		expected bool
	}{
		{"ppm order", WorkOrderTypePPM, true},
		{"reactive order", WorkOrderTypeReactive, false},
		{"custom type counts as reactive", "Inspection", false},
		{"empty type", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wo := &WorkOrder{WorkOrderType: tt.woType}
			if got := wo.IsPPM(); got != tt.expected {
				t.Errorf("IsPPM() with type %q = %v, want %v", tt.woType, got, tt.expected)
			}
		})
	}
}

func TestWorkOrder_IsClosed(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected bool
	}{
		{"closed", WorkOrderClosed, true},
		{"open", WorkOrderOpen, false},
		{"rejected is not closed", WorkOrderRejected, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wo := &WorkOrder{Status: tt.status}
			if got := wo.IsClosed(); got != tt.expected {
				t.Errorf("IsClosed() with status %q = %v, want %v", tt.status, got, tt.expected)
			}
		})
	}
}
