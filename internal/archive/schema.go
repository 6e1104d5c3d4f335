package archive

const Schema = `
create table if not exists runs (
	id text primary key,
	updated text not null,
	source text not null,
	reason text not null,
	created_at integer not null
);

create table if not exists run_rankings (
	run_id text not null references runs(id) on delete cascade,
	rank integer not null,
	name text not null,
	primary key (run_id, rank)
);

create index if not exists runs_created_at on runs(created_at);
`
