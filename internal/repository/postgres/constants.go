package postgres

// SRID4326 - WGS84 coordinate system
const SRID4326 = 4326
