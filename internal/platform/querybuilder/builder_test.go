package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("clubs").
		Where(Eq("membership", "public"), IsNull("deleted_at")).
		OrderBy("name").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM clubs WHERE membership = $1 AND deleted_at IS NULL ORDER BY name LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "public" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderRangeAndOffset(t *testing.T) {
	query, args, err := Select("id").
		From("clubs").
		Where(Gte("lat", 36.2), Lte("lat", 36.9), Gte("lng", -122.4), Lte("lng", -121.5)).
		OrderBy("id").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM clubs WHERE lat >= $1 AND lat <= $2 AND lng >= $3 AND lng <= $4 ORDER BY id LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[0] != 36.2 || args[3] != -121.5 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("favorites").
		Columns("profile_id", "club_id").
		Values("p1", "augusta-national").
		Suffix("ON CONFLICT (profile_id, club_id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO favorites (profile_id, club_id) VALUES ($1, $2) ON CONFLICT (profile_id, club_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "p1" || args[1] != "augusta-national" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("clubs").
		Set("name", "Pebble Beach Golf Links").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "pebble-beach-golf-links")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE clubs SET name = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Pebble Beach Golf Links" || args[1] != "pebble-beach-golf-links" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("favorites").
		Where(Eq("profile_id", "p1"), Eq("club_id", "augusta-national")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM favorites WHERE profile_id = $1 AND club_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilderRequiresConditions(t *testing.T) {
	if _, _, err := DeleteFrom("favorites").ToSQL(); err == nil {
		t.Fatal("expected error for unconditional delete")
	}
}
