package request

import "testing"

func TestCheckoutFormRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		form CheckoutFormRequest
		want map[string]string
	}{
		{
			name: "valid",
			form: CheckoutFormRequest{FullName: "Maria Silva", Email: "maria@example.com", CPF: "529.982.247-25", Phone: "(11) 98765-4321"},
			want: map[string]string{},
		},
		{
			name: "all empty",
			form: CheckoutFormRequest{},
			want: map[string]string{
				"fullName": MsgFullNameRequired,
				"email":    MsgEmailRequired,
				"cpf":      MsgCPFRequired,
				"phone":    MsgPhoneRequired,
			},
		},
		{
			name: "all invalid",
			form: CheckoutFormRequest{FullName: "Maria", Email: "maria@", CPF: "111.111.111-11", Phone: "1234"},
			want: map[string]string{
				"fullName": MsgFullNameInvalid,
				"email":    MsgEmailInvalid,
				"cpf":      MsgCPFInvalid,
				"phone":    MsgPhoneInvalid,
			},
		},
		{
			name: "landline accepted",
			form: CheckoutFormRequest{FullName: "Maria Silva", Email: "maria@example.com", CPF: "52998224725", Phone: "1133334444"},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.form.Validate()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Fatalf("field %s: expected %q, got %q", k, v, got[k])
				}
			}
		})
	}
}

func TestCheckoutFormRequest_MaskedAndEntity(t *testing.T) {
	form := CheckoutFormRequest{FullName: "  Maria Silva ", Email: " maria@example.com", CPF: "52998224725", Phone: "11987654321"}

	masked := form.Masked()
	if masked.CPF != "529.982.247-25" || masked.Phone != "(11) 98765-4321" {
		t.Fatalf("unexpected masked form %+v", masked)
	}
	if masked.FullName != "Maria Silva" {
		t.Fatalf("expected trimmed name, got %q", masked.FullName)
	}

	c := masked.ToEntity()
	if c.Document != "52998224725" || c.Phone != "11987654321" || c.Email != "maria@example.com" {
		t.Fatalf("unexpected entity %+v", c)
	}
}

func TestPixPaymentRequest_ToEntity(t *testing.T) {
	amount := 4367.0
	r := PixPaymentRequest{
		Amount:   &amount,
		Customer: CustomerRequest{Name: "Maria Silva", Email: "m@example.com", Document: "52998224725", Phone: "11987654321"},
		Items:    []PaymentItemRequest{{Title: "Item", Quantity: 2, Price: 100}},
	}

	got := r.ToEntity()
	if got.IP != "" {
		t.Fatalf("expected no ip when the body has none, got %q", got.IP)
	}
	if *got.Amount != 4367 || got.Customer.FullName != "Maria Silva" {
		t.Fatalf("unexpected entity %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", got.Items)
	}

	r.IP = "200.1.1.1"
	if got := r.ToEntity(); got.IP != "200.1.1.1" {
		t.Fatalf("expected body ip, got %q", got.IP)
	}
}
