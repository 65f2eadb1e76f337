/*package commah computes dark matter halo mass accretion histories (MAH)
and NFW concentration-mass relations (COM) as a function of cosmology, halo
mass and redshift, following the analytic model of Correa et al.
(2015a,b,c).

The entry point is Run, which evaluates a set of halo samples (zi, Mi) over
target output redshifts and assembles an output table. Supporting packages
supply the background cosmology (cosmo), the linear growth factor (growth)
and the mass variance of the density field (perturb).*/
package commah
