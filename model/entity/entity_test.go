package entity

import "testing"

func TestOperator_TableName(t *testing.T) {
	if got := (Operator{}).TableName(); got != "users" {
		t.Errorf("Operator.TableName() = %q, want users", got)
	}
}

func TestProductMaster_TableName(t *testing.T) {
	if got := (ProductMaster{}).TableName(); got != "product_master" {
		t.Errorf("ProductMaster.TableName() = %q, want product_master", got)
	}
}

func TestGoodsReceiving_TableName(t *testing.T) {
	if got := (GoodsReceiving{}).TableName(); got != "goods_receiving" {
		t.Errorf("GoodsReceiving.TableName() = %q, want goods_receiving", got)
	}
}

func TestSale_TableName(t *testing.T) {
	if got := (Sale{}).TableName(); got != "sales" {
		t.Errorf("Sale.TableName() = %q, want sales", got)
	}
}

func TestValidUnit(t *testing.T) {
	for _, u := range UnitChoices() {
		if !ValidUnit(u) {
			t.Errorf("ValidUnit(%q) = false, want true", u)
		}
	}
	for _, u := range []string{"", "dozen", "Pcs", "kg "} {
		if ValidUnit(u) {
			t.Errorf("ValidUnit(%q) = true, want false", u)
		}
	}
}

func TestOperator_PasswordRoundTrip(t *testing.T) {
	op := Operator{Username: "operator1"}
	if err := op.SetPassword("password123"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if op.Password == "password123" {
		t.Fatal("password stored in plaintext")
	}
	if !op.CheckPassword("password123") {
		t.Error("CheckPassword rejected the correct password")
	}
	if op.CheckPassword("password124") {
		t.Error("CheckPassword accepted a wrong password")
	}
}
