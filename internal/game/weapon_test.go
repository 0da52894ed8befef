package game

import "testing"

func TestWeaponFiresAndCoolsDown(t *testing.T) {
	w := NewWeapon(7, 0.2, 2.0)

	if denied := w.CheckFire(); denied != FireOK {
		t.Fatalf("expected fresh weapon to fire, denied %d", denied)
	}
	w.consumeRound()
	if w.Rounds != 6 {
		t.Fatalf("expected 6 rounds after one shot, got %d", w.Rounds)
	}
	if denied := w.CheckFire(); denied != FireDeniedCooldown {
		t.Fatalf("expected fire-rate cooldown, got %d", denied)
	}

	w.Update(0.25)
	if denied := w.CheckFire(); denied != FireOK {
		t.Fatalf("expected cooldown elapsed after 0.25s, denied %d", denied)
	}
}

func TestWeaponEmptyMagazineAutoReloads(t *testing.T) {
	w := NewWeapon(2, 0, 1.0)

	w.consumeRound()
	w.consumeRound()

	if w.Rounds != 0 {
		t.Fatalf("expected empty magazine, got %d rounds", w.Rounds)
	}
	if !w.Reloading() {
		t.Fatalf("expected automatic reload to start on empty magazine")
	}
	if denied := w.CheckFire(); denied != FireDeniedReloading {
		t.Fatalf("expected reload to block firing, got %d", denied)
	}
}

func TestWeaponReloadRestoresFullMagazine(t *testing.T) {
	w := NewWeapon(7, 0.2, 2.0)
	w.consumeRound()
	w.consumeRound()
	w.consumeRound()

	if !w.StartReload() {
		t.Fatalf("expected manual reload to start with partial magazine")
	}
	if w.StartReload() {
		t.Fatalf("expected second reload request to be rejected mid-reload")
	}

	w.Update(1.0)
	if p := w.ReloadProgress(); p < 0.45 || p > 0.55 {
		t.Fatalf("expected ~0.5 reload progress at half time, got %.2f", p)
	}
	if w.SpinAngle() <= 0 {
		t.Fatalf("expected reload spin while reloading")
	}

	w.Update(1.1)
	if w.Reloading() {
		t.Fatalf("expected reload complete after full duration")
	}
	if w.Rounds != 7 {
		t.Fatalf("expected reload to restore exactly 7 rounds, got %d", w.Rounds)
	}
	if w.SpinAngle() != 0 {
		t.Fatalf("expected spin angle to reset when idle")
	}
}

func TestWeaponFullMagazineRejectsReload(t *testing.T) {
	w := NewWeapon(7, 0.2, 2.0)
	if w.StartReload() {
		t.Fatalf("expected reload with a full magazine to be rejected")
	}
}
